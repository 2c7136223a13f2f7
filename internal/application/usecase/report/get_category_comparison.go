// Package report contains the reporting and budget-evaluation use cases.
package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// GetCategoryComparisonInput represents the input for the category comparison report.
type GetCategoryComparisonInput struct {
	UserID   uuid.UUID
	Category string
}

// GetCategoryComparisonOutput represents month-by-month spending for a single
// category across the user's entire history. Month keys are YYYY-MM, sorted
// ascending.
type GetCategoryComparisonOutput struct {
	Category    string
	Comparison  []MonthBucket
	TotalCount  int
	TotalAmount decimal.Decimal
}

// GetCategoryComparisonUseCase handles the category comparison report.
type GetCategoryComparisonUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewGetCategoryComparisonUseCase creates a new GetCategoryComparisonUseCase instance.
func NewGetCategoryComparisonUseCase(expenseRepo adapter.ExpenseRepository) *GetCategoryComparisonUseCase {
	return &GetCategoryComparisonUseCase{
		expenseRepo: expenseRepo,
	}
}

// Execute computes monthly totals for one category. Unlike the other
// reports this is not period-scoped: the whole history is compared.
func (uc *GetCategoryComparisonUseCase) Execute(ctx context.Context, input GetCategoryComparisonInput) (*GetCategoryComparisonOutput, error) {
	if input.UserID == uuid.Nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeMissingUserID,
			"userId is required",
			domainerror.ErrMissingUserID,
		)
	}
	if input.Category == "" {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeMissingCategory,
			"category is required",
			domainerror.ErrMissingCategory,
		)
	}

	expenses, err := uc.expenseRepo.FindByUser(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	comparison, count, total := aggregateByMonth(expenses, input.Category)

	return &GetCategoryComparisonOutput{
		Category:    input.Category,
		Comparison:  comparison,
		TotalCount:  count,
		TotalAmount: total,
	}, nil
}
