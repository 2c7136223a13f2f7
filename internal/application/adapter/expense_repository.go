// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/domain/entity"
)

// ExpenseFilter defines filter options for listing expenses.
type ExpenseFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  string // Exact match when non-empty
}

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by its ID, scoped to the user.
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Expense, error)

	// FindByUser retrieves all expenses for a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error)

	// FindByFilter retrieves expenses matching the filter, newest first.
	FindByFilter(ctx context.Context, userID uuid.UUID, filter ExpenseFilter) ([]*entity.Expense, error)

	// Update persists changes to an existing expense.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense, scoped to the user.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
