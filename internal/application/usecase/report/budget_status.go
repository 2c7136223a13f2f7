// Package report contains the reporting and budget-evaluation use cases.
package report

import (
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

// BudgetHealth classifies actual spend against a budget ceiling.
type BudgetHealth string

const (
	BudgetHealthGood    BudgetHealth = "good"
	BudgetHealthWarning BudgetHealth = "warning"
	BudgetHealthOver    BudgetHealth = "over"
)

// BudgetStatus is the compliance result for a single budget.
type BudgetStatus struct {
	Category     string
	BudgetAmount decimal.Decimal
	Spent        decimal.Decimal
	Remaining    decimal.Decimal // May be negative; flooring at zero is a UI concern
	Percentage   decimal.Decimal // One decimal place
	Status       BudgetHealth
}

// evaluateBudgets joins category totals against the user's budgets for the
// requested period. Budgets for other periods are excluded entirely.
// Duplicate budgets for the same category and period each produce their own
// status entry; the duplication is a storage quirk the evaluator tolerates
// rather than merges.
func evaluateBudgets(budgets []*entity.Budget, buckets []CategoryBucket, period Period) []BudgetStatus {
	spentByCategory := make(map[string]decimal.Decimal, len(buckets))
	for _, b := range buckets {
		spentByCategory[b.Category] = b.Total
	}

	statuses := make([]BudgetStatus, 0, len(budgets))
	for _, budget := range budgets {
		if Period(budget.Period) != period {
			continue
		}

		spent := spentByCategory[budget.Category] // zero when no bucket exists
		remaining := budget.Amount.Sub(spent)

		// A non-positive ceiling is degenerate: report 0% and a good
		// status instead of dividing by zero or failing the report.
		percentage := decimal.Zero
		if budget.Amount.IsPositive() {
			percentage = spent.Mul(decimal.NewFromInt(100)).Div(budget.Amount).Round(1)
		}

		statuses = append(statuses, BudgetStatus{
			Category:     budget.Category,
			BudgetAmount: roundAmount(budget.Amount),
			Spent:        roundAmount(spent),
			Remaining:    roundAmount(remaining),
			Percentage:   percentage,
			Status:       classifyBudget(percentage),
		})
	}

	return statuses
}

// classifyBudget maps a spend percentage to a health status:
// over above 100%, warning above 80%, good otherwise.
func classifyBudget(percentage decimal.Decimal) BudgetHealth {
	hundred := decimal.NewFromInt(100)
	eighty := decimal.NewFromInt(80)

	switch {
	case percentage.GreaterThan(hundred):
		return BudgetHealthOver
	case percentage.GreaterThan(eighty):
		return BudgetHealthWarning
	default:
		return BudgetHealthGood
	}
}
