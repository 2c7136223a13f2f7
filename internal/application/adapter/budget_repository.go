// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget in the database.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget by its ID, scoped to the user.
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Budget, error)

	// FindByUser retrieves all budgets for a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error)

	// Update persists changes to an existing budget.
	Update(ctx context.Context, budget *entity.Budget) error

	// Delete removes a budget, scoped to the user.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
