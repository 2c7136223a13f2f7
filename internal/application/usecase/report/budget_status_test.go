// Package report contains the reporting and budget-evaluation use cases.
package report

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

func TestEvaluateBudgets(t *testing.T) {
	buckets := []CategoryBucket{
		{Category: "Food", Total: decimal.NewFromInt(150), Count: 2},
		{Category: "Travel", Total: decimal.NewFromInt(90), Count: 1},
	}

	t.Run("over budget", func(t *testing.T) {
		budgets := []*entity.Budget{
			testBudget("Food", 100, entity.BudgetPeriodMonth),
		}

		statuses := evaluateBudgets(budgets, buckets, PeriodMonth)

		if len(statuses) != 1 {
			t.Fatalf("expected 1 status, got %d", len(statuses))
		}
		status := statuses[0]
		assertDecimal(t, "spent", status.Spent, "150")
		assertDecimal(t, "remaining", status.Remaining, "-50")
		assertDecimal(t, "percentage", status.Percentage, "150")
		if status.Status != BudgetHealthOver {
			t.Errorf("expected status over, got %s", status.Status)
		}
	})

	t.Run("warning strictly above 80 percent", func(t *testing.T) {
		budgets := []*entity.Budget{
			testBudget("Travel", 100, entity.BudgetPeriodMonth),
		}

		statuses := evaluateBudgets(budgets, buckets, PeriodMonth)

		if len(statuses) != 1 {
			t.Fatalf("expected 1 status, got %d", len(statuses))
		}
		assertDecimal(t, "percentage", statuses[0].Percentage, "90")
		if statuses[0].Status != BudgetHealthWarning {
			t.Errorf("expected status warning, got %s", statuses[0].Status)
		}
	})

	t.Run("exactly 100 percent is warning, not over", func(t *testing.T) {
		budgets := []*entity.Budget{
			testBudget("Food", 150, entity.BudgetPeriodMonth),
		}

		statuses := evaluateBudgets(budgets, buckets, PeriodMonth)

		assertDecimal(t, "percentage", statuses[0].Percentage, "100")
		if statuses[0].Status != BudgetHealthWarning {
			t.Errorf("expected status warning at 100%%, got %s", statuses[0].Status)
		}
	})

	t.Run("exactly 80 percent is good", func(t *testing.T) {
		budgets := []*entity.Budget{
			testBudget("Food", 187.50, entity.BudgetPeriodMonth),
		}

		statuses := evaluateBudgets(budgets, buckets, PeriodMonth)

		assertDecimal(t, "percentage", statuses[0].Percentage, "80")
		if statuses[0].Status != BudgetHealthGood {
			t.Errorf("expected status good at 80%%, got %s", statuses[0].Status)
		}
	})

	t.Run("no spending yields zero spent and full remaining", func(t *testing.T) {
		budgets := []*entity.Budget{
			testBudget("Utilities", 200, entity.BudgetPeriodMonth),
		}

		statuses := evaluateBudgets(budgets, buckets, PeriodMonth)

		if len(statuses) != 1 {
			t.Fatalf("expected 1 status, got %d", len(statuses))
		}
		assertDecimal(t, "spent", statuses[0].Spent, "0")
		assertDecimal(t, "remaining", statuses[0].Remaining, "200")
		if statuses[0].Status != BudgetHealthGood {
			t.Errorf("expected status good, got %s", statuses[0].Status)
		}
	})

	t.Run("degenerate zero amount yields zero percent and good", func(t *testing.T) {
		budgets := []*entity.Budget{
			testBudget("Food", 0, entity.BudgetPeriodMonth),
		}

		statuses := evaluateBudgets(budgets, buckets, PeriodMonth)

		assertDecimal(t, "percentage", statuses[0].Percentage, "0")
		if statuses[0].Status != BudgetHealthGood {
			t.Errorf("expected status good for degenerate budget, got %s", statuses[0].Status)
		}
	})

	t.Run("mismatched period budgets are excluded", func(t *testing.T) {
		budgets := []*entity.Budget{
			testBudget("Food", 100, entity.BudgetPeriodWeek),
			testBudget("Food", 100, entity.BudgetPeriodYear),
		}

		statuses := evaluateBudgets(budgets, buckets, PeriodMonth)

		if len(statuses) != 0 {
			t.Errorf("expected no statuses for mismatched periods, got %d", len(statuses))
		}
	})

	t.Run("duplicate budgets each produce an independent entry", func(t *testing.T) {
		budgets := []*entity.Budget{
			testBudget("Food", 100, entity.BudgetPeriodMonth),
			testBudget("Food", 300, entity.BudgetPeriodMonth),
		}

		statuses := evaluateBudgets(budgets, buckets, PeriodMonth)

		if len(statuses) != 2 {
			t.Fatalf("expected 2 statuses for duplicate budgets, got %d", len(statuses))
		}
		if statuses[0].Status != BudgetHealthOver {
			t.Errorf("expected first duplicate over, got %s", statuses[0].Status)
		}
		if statuses[1].Status != BudgetHealthGood {
			t.Errorf("expected second duplicate good, got %s", statuses[1].Status)
		}
	})

	t.Run("percentage is never negative", func(t *testing.T) {
		budgets := []*entity.Budget{
			testBudget("Food", -50, entity.BudgetPeriodMonth),
			testBudget("Travel", 100, entity.BudgetPeriodMonth),
			testBudget("Utilities", 10, entity.BudgetPeriodMonth),
		}

		for _, status := range evaluateBudgets(budgets, buckets, PeriodMonth) {
			if status.Percentage.IsNegative() {
				t.Errorf("negative percentage %s for %s", status.Percentage, status.Category)
			}
		}
	})
}
