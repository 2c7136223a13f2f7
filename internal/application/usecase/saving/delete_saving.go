// Package saving contains savings-related use cases.
package saving

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/application/adapter"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

// DeleteSavingInput represents the input for deleting a saving.
type DeleteSavingInput struct {
	UserID uuid.UUID
	ID     uuid.UUID
}

// DeleteSavingUseCase handles saving deletion.
type DeleteSavingUseCase struct {
	savingRepo adapter.SavingRepository
}

// NewDeleteSavingUseCase creates a new DeleteSavingUseCase instance.
func NewDeleteSavingUseCase(savingRepo adapter.SavingRepository) *DeleteSavingUseCase {
	return &DeleteSavingUseCase{
		savingRepo: savingRepo,
	}
}

// Execute removes a saving scoped to the user.
func (uc *DeleteSavingUseCase) Execute(ctx context.Context, input DeleteSavingInput) error {
	if err := uc.savingRepo.Delete(ctx, input.UserID, input.ID); err != nil {
		if errors.Is(err, domainerror.ErrSavingNotFound) {
			return domainerror.NewSavingError(
				domainerror.ErrCodeSavingNotFound,
				"saving not found",
				domainerror.ErrSavingNotFound,
			)
		}
		return fmt.Errorf("failed to delete saving: %w", err)
	}

	return nil
}
