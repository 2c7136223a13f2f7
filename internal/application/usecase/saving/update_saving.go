// Package saving contains savings-related use cases.
package saving

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

// UpdateSavingInput represents the input for updating a saving.
// Nil fields are left unchanged.
type UpdateSavingInput struct {
	UserID      uuid.UUID
	ID          uuid.UUID
	Amount      *decimal.Decimal
	Goal        *string
	Description *string
	Date        *time.Time
}

// UpdateSavingOutput represents the output of updating a saving.
type UpdateSavingOutput struct {
	Saving *entity.Saving
}

// UpdateSavingUseCase handles partial saving updates.
type UpdateSavingUseCase struct {
	savingRepo adapter.SavingRepository
}

// NewUpdateSavingUseCase creates a new UpdateSavingUseCase instance.
func NewUpdateSavingUseCase(savingRepo adapter.SavingRepository) *UpdateSavingUseCase {
	return &UpdateSavingUseCase{
		savingRepo: savingRepo,
	}
}

// Execute applies the provided fields to an existing saving.
func (uc *UpdateSavingUseCase) Execute(ctx context.Context, input UpdateSavingInput) (*UpdateSavingOutput, error) {
	saving, err := uc.savingRepo.FindByID(ctx, input.UserID, input.ID)
	if err != nil {
		if errors.Is(err, domainerror.ErrSavingNotFound) {
			return nil, domainerror.NewSavingError(
				domainerror.ErrCodeSavingNotFound,
				"saving not found",
				domainerror.ErrSavingNotFound,
			)
		}
		return nil, fmt.Errorf("failed to get saving: %w", err)
	}

	if input.Amount != nil {
		if !input.Amount.IsPositive() {
			return nil, domainerror.NewSavingError(
				domainerror.ErrCodeInvalidSavingAmount,
				"amount must be greater than zero",
				domainerror.ErrInvalidSavingAmount,
			)
		}
		saving.Amount = *input.Amount
	}
	if input.Goal != nil {
		if *input.Goal == "" {
			return nil, domainerror.NewSavingError(
				domainerror.ErrCodeMissingSavingGoal,
				"goal is required",
				domainerror.ErrMissingSavingGoal,
			)
		}
		saving.Goal = *input.Goal
	}
	if input.Description != nil {
		saving.Description = *input.Description
	}
	if input.Date != nil {
		saving.Date = *input.Date
	}
	saving.UpdatedAt = time.Now().UTC()

	if err := uc.savingRepo.Update(ctx, saving); err != nil {
		return nil, fmt.Errorf("failed to update saving: %w", err)
	}

	return &UpdateSavingOutput{Saving: saving}, nil
}
