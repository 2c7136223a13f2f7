// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// UpdateBudgetInput represents the input for updating a budget.
// Nil fields are left unchanged.
type UpdateBudgetInput struct {
	UserID   uuid.UUID
	ID       uuid.UUID
	Category *string
	Amount   *decimal.Decimal
	Period   *entity.BudgetPeriod
}

// UpdateBudgetOutput represents the output of updating a budget.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles partial budget updates.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute applies the provided fields to an existing budget.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	budget, err := uc.budgetRepo.FindByID(ctx, input.UserID, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetNotFound,
				"budget not found",
				domainerror.ErrBudgetNotFound,
			)
		}
		return nil, fmt.Errorf("failed to get budget: %w", err)
	}

	if input.Category != nil {
		if *input.Category == "" {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeMissingBudgetCategory,
				"category is required",
				domainerror.ErrMissingBudgetCategory,
			)
		}
		budget.Category = *input.Category
	}
	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetAmount,
				"amount must be greater than zero",
				domainerror.ErrInvalidBudgetAmount,
			)
		}
		budget.Amount = *input.Amount
	}
	if input.Period != nil {
		if !input.Period.IsValid() {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetPeriod,
				"period must be one of: week, month, year",
				domainerror.ErrInvalidBudgetPeriod,
			)
		}
		budget.Period = *input.Period
	}
	budget.UpdatedAt = time.Now().UTC()

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	return &UpdateBudgetOutput{Budget: budget}, nil
}
