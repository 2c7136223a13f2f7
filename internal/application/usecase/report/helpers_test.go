// Package report contains the reporting and budget-evaluation use cases.
package report

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
)

// testExpense builds an expense on a given calendar day.
func testExpense(t *testing.T, category string, amount float64, date string) *entity.Expense {
	t.Helper()

	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		t.Fatalf("invalid test date %q: %v", date, err)
	}

	return &entity.Expense{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		Amount:   decimal.NewFromFloat(amount),
		Category: category,
		Date:     day,
	}
}

// testBudget builds a budget ceiling for a category and period.
func testBudget(category string, amount float64, period entity.BudgetPeriod) *entity.Budget {
	return &entity.Budget{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		Category: category,
		Amount:   decimal.NewFromFloat(amount),
		Period:   period,
	}
}

// stubExpenseRepository serves a fixed expense list or a fixed error.
type stubExpenseRepository struct {
	expenses []*entity.Expense
	err      error
}

func (s *stubExpenseRepository) Create(_ context.Context, _ *entity.Expense) error { return nil }

func (s *stubExpenseRepository) FindByID(_ context.Context, _, _ uuid.UUID) (*entity.Expense, error) {
	return nil, nil
}

func (s *stubExpenseRepository) FindByUser(_ context.Context, _ uuid.UUID) ([]*entity.Expense, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.expenses, nil
}

func (s *stubExpenseRepository) FindByFilter(_ context.Context, _ uuid.UUID, _ adapter.ExpenseFilter) ([]*entity.Expense, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.expenses, nil
}

func (s *stubExpenseRepository) Update(_ context.Context, _ *entity.Expense) error { return nil }

func (s *stubExpenseRepository) Delete(_ context.Context, _, _ uuid.UUID) error { return nil }

// stubBudgetRepository serves a fixed budget list or a fixed error.
type stubBudgetRepository struct {
	budgets []*entity.Budget
	err     error
}

func (s *stubBudgetRepository) Create(_ context.Context, _ *entity.Budget) error { return nil }

func (s *stubBudgetRepository) FindByID(_ context.Context, _, _ uuid.UUID) (*entity.Budget, error) {
	return nil, nil
}

func (s *stubBudgetRepository) FindByUser(_ context.Context, _ uuid.UUID) ([]*entity.Budget, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.budgets, nil
}

func (s *stubBudgetRepository) Update(_ context.Context, _ *entity.Budget) error { return nil }

func (s *stubBudgetRepository) Delete(_ context.Context, _, _ uuid.UUID) error { return nil }

// fixedClock pins "now" for deterministic interval resolution.
func fixedClock(date string) func() time.Time {
	day, _ := time.Parse("2006-01-02", date)
	return func() time.Time { return day }
}

// assertDecimal fails the test when a decimal does not match its expected
// string representation.
func assertDecimal(t *testing.T, name string, got decimal.Decimal, expected string) {
	t.Helper()

	if !got.Equal(decimal.RequireFromString(expected)) {
		t.Errorf("expected %s = %s, got %s", name, expected, got.String())
	}
}
