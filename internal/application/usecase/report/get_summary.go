// Package report contains the reporting and budget-evaluation use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// GetSummaryInput represents the input for the spending summary report.
type GetSummaryInput struct {
	UserID uuid.UUID
	Period Period
}

// CategoryBreakdownItem represents a single category in the summary breakdown.
type CategoryBreakdownItem struct {
	Category   string
	Amount     decimal.Decimal
	Percentage int // Integer percent of total spend
}

// GetSummaryOutput represents the spending summary for a period.
type GetSummaryOutput struct {
	Period            Period
	DateRange         Interval
	TotalSpent        decimal.Decimal
	ExpenseCount      int
	CategoryBreakdown []CategoryBreakdownItem
	BudgetStatus      []BudgetStatus
}

// GetSummaryUseCase handles the spending summary report.
type GetSummaryUseCase struct {
	expenseRepo adapter.ExpenseRepository
	budgetRepo  adapter.BudgetRepository
	now         func() time.Time
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(
	expenseRepo adapter.ExpenseRepository,
	budgetRepo adapter.BudgetRepository,
) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		expenseRepo: expenseRepo,
		budgetRepo:  budgetRepo,
		now:         time.Now,
	}
}

// Execute computes the spending summary: totals, category breakdown with
// percentage of total spend, and budget compliance for the period.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	if input.UserID == uuid.Nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeMissingUserID,
			"userId is required",
			domainerror.ErrMissingUserID,
		)
	}

	// Expenses and budgets are independent reads; fetch them concurrently
	// and join before evaluating budgets.
	var (
		expenses []*entity.Expense
		budgets  []*entity.Budget
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		expenses, err = uc.expenseRepo.FindByUser(gctx, input.UserID)
		return err
	})
	g.Go(func() error {
		var err error
		budgets, err = uc.budgetRepo.FindByUser(gctx, input.UserID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load summary data: %w", err)
	}

	interval := ResolveInterval(input.Period, uc.now())
	buckets, totalSpent, count := aggregateByCategory(expenses, interval)

	// Breakdown is presented highest-spending first.
	ranked := rankBuckets(buckets, len(buckets))
	breakdown := make([]CategoryBreakdownItem, 0, len(ranked))
	for _, bucket := range ranked {
		breakdown = append(breakdown, CategoryBreakdownItem{
			Category:   bucket.Category,
			Amount:     bucket.Total,
			Percentage: percentOfTotal(bucket.Total, totalSpent),
		})
	}

	return &GetSummaryOutput{
		Period:            input.Period,
		DateRange:         interval,
		TotalSpent:        totalSpent,
		ExpenseCount:      count,
		CategoryBreakdown: breakdown,
		BudgetStatus:      evaluateBudgets(budgets, buckets, input.Period),
	}, nil
}
