// Package report contains the reporting and budget-evaluation use cases.
package report

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

func monthInterval(t *testing.T, now string) Interval {
	t.Helper()
	return ResolveInterval(PeriodMonth, fixedClock(now)())
}

func TestAggregateByCategory(t *testing.T) {
	interval := monthInterval(t, "2024-01-25")

	t.Run("groups by category and computes grand total", func(t *testing.T) {
		expenses := []*entity.Expense{
			testExpense(t, "Food", 100, "2024-01-05"),
			testExpense(t, "Travel", 200, "2024-01-10"),
			testExpense(t, "Food", 50, "2024-01-20"),
		}

		buckets, total, count := aggregateByCategory(expenses, interval)

		if count != 3 {
			t.Errorf("expected count 3, got %d", count)
		}
		assertDecimal(t, "total", total, "350")

		if len(buckets) != 2 {
			t.Fatalf("expected 2 buckets, got %d", len(buckets))
		}
		// Encounter order is preserved: Food was seen first.
		if buckets[0].Category != "Food" || buckets[1].Category != "Travel" {
			t.Errorf("expected encounter order [Food Travel], got [%s %s]",
				buckets[0].Category, buckets[1].Category)
		}
		assertDecimal(t, "Food total", buckets[0].Total, "150")
		if buckets[0].Count != 2 {
			t.Errorf("expected Food count 2, got %d", buckets[0].Count)
		}
		assertDecimal(t, "Travel total", buckets[1].Total, "200")
	})

	t.Run("excludes expenses outside the interval", func(t *testing.T) {
		expenses := []*entity.Expense{
			testExpense(t, "Food", 100, "2024-01-05"),
			testExpense(t, "Food", 999, "2023-12-31"),
			testExpense(t, "Food", 999, "2024-01-26"),
		}

		buckets, total, count := aggregateByCategory(expenses, interval)

		if count != 1 {
			t.Errorf("expected count 1, got %d", count)
		}
		assertDecimal(t, "total", total, "100")
		if len(buckets) != 1 {
			t.Fatalf("expected 1 bucket, got %d", len(buckets))
		}
	})

	t.Run("empty input yields zero total and no buckets", func(t *testing.T) {
		buckets, total, count := aggregateByCategory(nil, interval)

		if count != 0 {
			t.Errorf("expected count 0, got %d", count)
		}
		if !total.IsZero() {
			t.Errorf("expected zero total, got %s", total.String())
		}
		if len(buckets) != 0 {
			t.Errorf("expected no buckets, got %d", len(buckets))
		}
	})

	t.Run("bucket totals sum to the grand total", func(t *testing.T) {
		expenses := []*entity.Expense{
			testExpense(t, "Food", 10.555, "2024-01-05"),
			testExpense(t, "Travel", 20.445, "2024-01-10"),
			testExpense(t, "Rent", 700.10, "2024-01-15"),
		}

		buckets, total, _ := aggregateByCategory(expenses, interval)

		sum := decimal.Zero
		for _, b := range buckets {
			sum = sum.Add(b.Total)
		}

		tolerance := decimal.RequireFromString("0.01")
		if sum.Sub(total).Abs().GreaterThan(tolerance) {
			t.Errorf("bucket sum %s differs from total %s beyond tolerance", sum, total)
		}
	})

	t.Run("amounts are rounded to two decimal places half up", func(t *testing.T) {
		expenses := []*entity.Expense{
			testExpense(t, "Food", 10.005, "2024-01-05"),
		}

		buckets, total, _ := aggregateByCategory(expenses, interval)

		assertDecimal(t, "total", total, "10.01")
		assertDecimal(t, "Food total", buckets[0].Total, "10.01")
	})
}

func TestAggregateByDay(t *testing.T) {
	interval := monthInterval(t, "2024-01-25")

	t.Run("groups by calendar day sorted ascending", func(t *testing.T) {
		expenses := []*entity.Expense{
			testExpense(t, "Food", 30, "2024-01-20"),
			testExpense(t, "Food", 10, "2024-01-05"),
			testExpense(t, "Travel", 20, "2024-01-05"),
		}

		points := aggregateByDay(expenses, interval)

		if len(points) != 2 {
			t.Fatalf("expected 2 points, got %d", len(points))
		}
		expectedFirst := time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC)
		if !points[0].Date.Equal(expectedFirst) {
			t.Errorf("expected first point on %v, got %v", expectedFirst, points[0].Date)
		}
		assertDecimal(t, "day one amount", points[0].Amount, "30")
		assertDecimal(t, "day two amount", points[1].Amount, "30")
	})

	t.Run("empty input yields no points", func(t *testing.T) {
		if points := aggregateByDay(nil, interval); len(points) != 0 {
			t.Errorf("expected no points, got %d", len(points))
		}
	})
}

func TestAggregateByMonth(t *testing.T) {
	t.Run("whole history, month keys ascending", func(t *testing.T) {
		expenses := []*entity.Expense{
			testExpense(t, "Food", 80, "2024-03-10"),
			testExpense(t, "Food", 100, "2023-11-05"),
			testExpense(t, "Travel", 500, "2024-01-02"),
			testExpense(t, "Food", 20, "2024-03-28"),
		}

		buckets, count, total := aggregateByMonth(expenses, "Food")

		if count != 3 {
			t.Errorf("expected count 3, got %d", count)
		}
		assertDecimal(t, "total", total, "200")

		if len(buckets) != 2 {
			t.Fatalf("expected 2 month buckets, got %d", len(buckets))
		}
		for i := 1; i < len(buckets); i++ {
			if buckets[i-1].Month >= buckets[i].Month {
				t.Errorf("month keys not strictly increasing: %s before %s",
					buckets[i-1].Month, buckets[i].Month)
			}
		}
		if buckets[0].Month != "2023-11" || buckets[1].Month != "2024-03" {
			t.Errorf("expected months [2023-11 2024-03], got [%s %s]",
				buckets[0].Month, buckets[1].Month)
		}
		assertDecimal(t, "2024-03 amount", buckets[1].Amount, "100")
	})

	t.Run("unknown category yields empty comparison", func(t *testing.T) {
		expenses := []*entity.Expense{
			testExpense(t, "Food", 80, "2024-03-10"),
		}

		buckets, count, total := aggregateByMonth(expenses, "Utilities")

		if count != 0 || !total.IsZero() || len(buckets) != 0 {
			t.Errorf("expected empty result, got count=%d total=%s buckets=%d",
				count, total, len(buckets))
		}
	})
}

func TestPercentOfTotal(t *testing.T) {
	tests := []struct {
		name     string
		amount   string
		total    string
		expected int
	}{
		{name: "rounds half up", amount: "150", total: "350", expected: 43},
		{name: "rounds down", amount: "200", total: "350", expected: 57},
		{name: "full share", amount: "350", total: "350", expected: 100},
		{name: "zero total yields zero percent", amount: "10", total: "0", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount := decimal.RequireFromString(tt.amount)
			total := decimal.RequireFromString(tt.total)
			if got := percentOfTotal(amount, total); got != tt.expected {
				t.Errorf("expected %d%%, got %d%%", tt.expected, got)
			}
		})
	}
}
