// Package budget contains budget-related use cases.
package budget

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
)

type stubBudgetRepository struct {
	created []*entity.Budget
	err     error
}

func (s *stubBudgetRepository) Create(_ context.Context, budget *entity.Budget) error {
	if s.err != nil {
		return s.err
	}
	s.created = append(s.created, budget)
	return nil
}

func (s *stubBudgetRepository) FindByID(_ context.Context, _, _ uuid.UUID) (*entity.Budget, error) {
	return nil, domainerror.ErrBudgetNotFound
}

func (s *stubBudgetRepository) FindByUser(_ context.Context, _ uuid.UUID) ([]*entity.Budget, error) {
	return s.created, nil
}

func (s *stubBudgetRepository) Update(_ context.Context, _ *entity.Budget) error { return nil }

func (s *stubBudgetRepository) Delete(_ context.Context, _, _ uuid.UUID) error { return nil }

func TestCreateBudgetUseCase_Execute(t *testing.T) {
	userID := uuid.New()

	validInput := func() CreateBudgetInput {
		return CreateBudgetInput{
			UserID:   userID,
			Category: "Food",
			Amount:   decimal.NewFromInt(300),
			Period:   entity.BudgetPeriodMonth,
		}
	}

	t.Run("creates a budget", func(t *testing.T) {
		repo := &stubBudgetRepository{}
		uc := NewCreateBudgetUseCase(repo)

		output, err := uc.Execute(context.Background(), validInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if output.Budget.Category != "Food" || output.Budget.Period != entity.BudgetPeriodMonth {
			t.Errorf("unexpected budget fields: %+v", output.Budget)
		}
		if len(repo.created) != 1 {
			t.Errorf("expected 1 created budget, got %d", len(repo.created))
		}
	})

	t.Run("duplicates for the same category and period are allowed", func(t *testing.T) {
		repo := &stubBudgetRepository{}
		uc := NewCreateBudgetUseCase(repo)

		for i := 0; i < 2; i++ {
			if _, err := uc.Execute(context.Background(), validInput()); err != nil {
				t.Fatalf("unexpected error on attempt %d: %v", i+1, err)
			}
		}
		if len(repo.created) != 2 {
			t.Errorf("expected 2 created budgets, got %d", len(repo.created))
		}
	})

	validationCases := []struct {
		name         string
		mutate       func(*CreateBudgetInput)
		expectedCode domainerror.BudgetErrorCode
	}{
		{
			name:         "zero amount",
			mutate:       func(in *CreateBudgetInput) { in.Amount = decimal.Zero },
			expectedCode: domainerror.ErrCodeInvalidBudgetAmount,
		},
		{
			name:         "negative amount",
			mutate:       func(in *CreateBudgetInput) { in.Amount = decimal.NewFromInt(-10) },
			expectedCode: domainerror.ErrCodeInvalidBudgetAmount,
		},
		{
			name:         "empty category",
			mutate:       func(in *CreateBudgetInput) { in.Category = "" },
			expectedCode: domainerror.ErrCodeMissingBudgetCategory,
		},
		{
			name:         "unrecognized period is rejected, not defaulted",
			mutate:       func(in *CreateBudgetInput) { in.Period = entity.BudgetPeriod("quarter") },
			expectedCode: domainerror.ErrCodeInvalidBudgetPeriod,
		},
	}

	for _, tt := range validationCases {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewCreateBudgetUseCase(&stubBudgetRepository{})
			input := validInput()
			tt.mutate(&input)

			_, err := uc.Execute(context.Background(), input)

			var budgetErr *domainerror.BudgetError
			if !errors.As(err, &budgetErr) {
				t.Fatalf("expected BudgetError, got %v", err)
			}
			if budgetErr.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, budgetErr.Code)
			}
		})
	}
}
