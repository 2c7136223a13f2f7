// Package report contains the reporting and budget-evaluation use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// GetTopCategoriesInput represents the input for the top categories report.
type GetTopCategoriesInput struct {
	UserID uuid.UUID
	Period Period
	Limit  int
}

// TopCategory represents a single ranked category.
type TopCategory struct {
	Category string
	Amount   decimal.Decimal
}

// GetTopCategoriesOutput represents the ranked top spending categories.
type GetTopCategoriesOutput struct {
	Categories []TopCategory
}

// GetTopCategoriesUseCase handles the top spending categories report.
type GetTopCategoriesUseCase struct {
	expenseRepo adapter.ExpenseRepository
	now         func() time.Time
}

// NewGetTopCategoriesUseCase creates a new GetTopCategoriesUseCase instance.
func NewGetTopCategoriesUseCase(expenseRepo adapter.ExpenseRepository) *GetTopCategoriesUseCase {
	return &GetTopCategoriesUseCase{
		expenseRepo: expenseRepo,
		now:         time.Now,
	}
}

// Execute computes the highest-spending categories of the period, ranked
// descending and truncated to the requested limit.
func (uc *GetTopCategoriesUseCase) Execute(ctx context.Context, input GetTopCategoriesInput) (*GetTopCategoriesOutput, error) {
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
	buckets, _, _ := aggregateByCategory(expenses, interval)

	ranked := rankBuckets(buckets, input.Limit)
	categories := make([]TopCategory, 0, len(ranked))
	for _, bucket := range ranked {
		categories = append(categories, TopCategory{
			Category: bucket.Category,
			Amount:   bucket.Total,
		})
	}

	return &GetTopCategoriesOutput{Categories: categories}, nil
}
