// Package report contains the reporting and budget-evaluation use cases.
package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

// CategoryBucket is an aggregated group of expenses sharing a category.
// Buckets are request-scoped and never persisted.
type CategoryBucket struct {
	Category string
	Total    decimal.Decimal
	Count    int
}

// DayBucket is an aggregated group of expenses sharing a calendar day.
type DayBucket struct {
	Date   time.Time
	Amount decimal.Decimal
}

// MonthBucket is an aggregated group of expenses sharing a YYYY-MM month key.
type MonthBucket struct {
	Month  string
	Amount decimal.Decimal
}

// roundAmount applies the presentation rounding policy: two decimal places,
// half rounded up.
func roundAmount(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// aggregateByCategory filters expenses to the interval and groups them by
// category, preserving first-seen encounter order. It returns the buckets,
// the grand total across all filtered expenses, and the filtered count.
func aggregateByCategory(expenses []*entity.Expense, interval Interval) ([]CategoryBucket, decimal.Decimal, int) {
	totals := make(map[string]*CategoryBucket)
	var order []string

	grandTotal := decimal.Zero
	count := 0

	for _, exp := range expenses {
		if !interval.Contains(exp.Date) {
			continue
		}
		count++
		grandTotal = grandTotal.Add(exp.Amount)

		bucket, ok := totals[exp.Category]
		if !ok {
			bucket = &CategoryBucket{Category: exp.Category, Total: decimal.Zero}
			totals[exp.Category] = bucket
			order = append(order, exp.Category)
		}
		bucket.Total = bucket.Total.Add(exp.Amount)
		bucket.Count++
	}

	buckets := make([]CategoryBucket, 0, len(order))
	for _, category := range order {
		b := totals[category]
		buckets = append(buckets, CategoryBucket{
			Category: b.Category,
			Total:    roundAmount(b.Total),
			Count:    b.Count,
		})
	}

	return buckets, roundAmount(grandTotal), count
}

// aggregateByDay filters expenses to the interval and groups them by calendar
// day, returning buckets sorted ascending by date.
func aggregateByDay(expenses []*entity.Expense, interval Interval) []DayBucket {
	totals := make(map[time.Time]decimal.Decimal)

	for _, exp := range expenses {
		if !interval.Contains(exp.Date) {
			continue
		}
		day := truncateToDay(exp.Date)
		totals[day] = totals[day].Add(exp.Amount)
	}

	buckets := make([]DayBucket, 0, len(totals))
	for day, amount := range totals {
		buckets = append(buckets, DayBucket{Date: day, Amount: roundAmount(amount)})
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date.Before(buckets[j].Date)
	})

	return buckets
}

// aggregateByMonth groups expenses of a single category by YYYY-MM month key
// across the user's entire history, returning buckets sorted ascending by
// month key plus the overall count and total for the category.
func aggregateByMonth(expenses []*entity.Expense, category string) ([]MonthBucket, int, decimal.Decimal) {
	totals := make(map[string]decimal.Decimal)

	count := 0
	total := decimal.Zero

	for _, exp := range expenses {
		if exp.Category != category {
			continue
		}
		count++
		total = total.Add(exp.Amount)

		key := exp.Date.Format("2006-01")
		totals[key] = totals[key].Add(exp.Amount)
	}

	buckets := make([]MonthBucket, 0, len(totals))
	for month, amount := range totals {
		buckets = append(buckets, MonthBucket{Month: month, Amount: roundAmount(amount)})
	}

	// YYYY-MM keys order correctly as strings.
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Month < buckets[j].Month
	})

	return buckets, count, roundAmount(total)
}

// percentOfTotal computes an integer percentage of total, 0 when total is
// not positive.
func percentOfTotal(amount, total decimal.Decimal) int {
	if !total.IsPositive() {
		return 0
	}
	pct := amount.Mul(decimal.NewFromInt(100)).Div(total)
	return int(pct.Round(0).IntPart())
}
