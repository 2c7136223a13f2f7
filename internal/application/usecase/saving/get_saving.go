// Package saving contains savings-related use cases.
package saving

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// GetSavingInput represents the input for fetching a single saving.
type GetSavingInput struct {
	UserID uuid.UUID
	ID     uuid.UUID
}

// GetSavingOutput represents the output of fetching a single saving.
type GetSavingOutput struct {
	Saving *entity.Saving
}

// GetSavingUseCase handles fetching a single saving.
type GetSavingUseCase struct {
	savingRepo adapter.SavingRepository
}

// NewGetSavingUseCase creates a new GetSavingUseCase instance.
func NewGetSavingUseCase(savingRepo adapter.SavingRepository) *GetSavingUseCase {
	return &GetSavingUseCase{
		savingRepo: savingRepo,
	}
}

// Execute retrieves a single saving scoped to the user.
func (uc *GetSavingUseCase) Execute(ctx context.Context, input GetSavingInput) (*GetSavingOutput, error) {
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

	return &GetSavingOutput{Saving: saving}, nil
}
