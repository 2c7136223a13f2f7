// Package report contains the reporting and budget-evaluation use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/adapter"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// GetTrendInput represents the input for the spending trend report.
type GetTrendInput struct {
	UserID uuid.UUID
	Period Period
}

// GetTrendOutput represents per-day spending within the period,
// sorted ascending by date. Days without spending are omitted.
type GetTrendOutput struct {
	Period Period
	Points []DayBucket
}

// GetTrendUseCase handles the daily spending trend report.
type GetTrendUseCase struct {
	expenseRepo adapter.ExpenseRepository
	now         func() time.Time
}

// NewGetTrendUseCase creates a new GetTrendUseCase instance.
func NewGetTrendUseCase(expenseRepo adapter.ExpenseRepository) *GetTrendUseCase {
	return &GetTrendUseCase{
		expenseRepo: expenseRepo,
		now:         time.Now,
	}
}

// Execute computes daily spending totals for the period.
func (uc *GetTrendUseCase) Execute(ctx context.Context, input GetTrendInput) (*GetTrendOutput, error) {
	if input.UserID == uuid.Nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeMissingUserID,
			"userId is required",
			domainerror.ErrMissingUserID,
		)
	}

	expenses, err := uc.expenseRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	interval := ResolveInterval(input.Period, uc.now())

	return &GetTrendOutput{
		Period: input.Period,
		Points: aggregateByDay(expenses, interval),
	}, nil
}
