// Package saving contains savings-related use cases.
package saving

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// CreateSavingInput represents the input for saving creation.
type CreateSavingInput struct {
	UserID      uuid.UUID
	Amount      decimal.Decimal
	Goal        string
	Description string
	Date        time.Time
}

// CreateSavingOutput represents the output of saving creation.
type CreateSavingOutput struct {
	Saving *entity.Saving
}

// CreateSavingUseCase handles saving creation logic.
type CreateSavingUseCase struct {
	savingRepo adapter.SavingRepository
}

// NewCreateSavingUseCase creates a new CreateSavingUseCase instance.
func NewCreateSavingUseCase(savingRepo adapter.SavingRepository) *CreateSavingUseCase {
	return &CreateSavingUseCase{
		savingRepo: savingRepo,
	}
}

// Execute performs the saving creation.
func (uc *CreateSavingUseCase) Execute(ctx context.Context, input CreateSavingInput) (*CreateSavingOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewSavingError(
			domainerror.ErrCodeInvalidSavingAmount,
			"amount must be greater than zero",
			domainerror.ErrInvalidSavingAmount,
		)
	}
	if input.Goal == "" {
		return nil, domainerror.NewSavingError(
			domainerror.ErrCodeMissingSavingGoal,
			"goal is required",
			domainerror.ErrMissingSavingGoal,
		)
	}
	if input.Date.IsZero() {
		return nil, domainerror.NewSavingError(
			domainerror.ErrCodeMissingSavingDate,
			"date is required",
			domainerror.ErrMissingSavingDate,
		)
	}

	saving := entity.NewSaving(
		input.UserID,
		input.Amount,
		input.Goal,
		input.Description,
		input.Date,
	)

	if err := uc.savingRepo.Create(ctx, saving); err != nil {
		return nil, fmt.Errorf("failed to create saving: %w", err)
	}

	return &CreateSavingOutput{Saving: saving}, nil
}
