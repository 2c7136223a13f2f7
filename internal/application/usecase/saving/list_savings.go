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
)

// ListSavingsInput represents the input for listing savings.
// Goal performs a case-insensitive substring search.
type ListSavingsInput struct {
	UserID    uuid.UUID
	StartDate *time.Time
	EndDate   *time.Time
	Goal      string
}

// ListSavingsOutput represents the output of listing savings.
type ListSavingsOutput struct {
	Savings    []*entity.Saving
	Count      int
	TotalSaved decimal.Decimal
}

// ListSavingsUseCase handles listing savings logic.
type ListSavingsUseCase struct {
	savingRepo adapter.SavingRepository
}

// NewListSavingsUseCase creates a new ListSavingsUseCase instance.
func NewListSavingsUseCase(savingRepo adapter.SavingRepository) *ListSavingsUseCase {
	return &ListSavingsUseCase{
		savingRepo: savingRepo,
	}
}

// Execute lists the user's savings newest first and sums the total saved
// across the filtered set.
func (uc *ListSavingsUseCase) Execute(ctx context.Context, input ListSavingsInput) (*ListSavingsOutput, error) {
	savings, err := uc.savingRepo.FindByFilter(ctx, input.UserID, adapter.SavingFilter{
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		Goal:      input.Goal,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list savings: %w", err)
	}

	totalSaved := decimal.Zero
	for _, s := range savings {
		totalSaved = totalSaved.Add(s.Amount)
	}

	return &ListSavingsOutput{
		Savings:    savings,
		Count:      len(savings),
		TotalSaved: totalSaved.Round(2),
	}, nil
}
