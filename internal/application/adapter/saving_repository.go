// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/fintrack/backend/internal/domain/entity"
)

// SavingFilter defines filter options for listing savings.
type SavingFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Goal      string // Case-insensitive substring match when non-empty
}

// SavingRepository defines the interface for saving persistence operations.
type SavingRepository interface {
	// Create creates a new saving in the database.
	Create(ctx context.Context, saving *entity.Saving) error

	// FindByID retrieves a saving by its ID, scoped to the user.
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Saving, error)

	// FindByUser retrieves all savings for a user, newest first.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Saving, error)

	// FindByFilter retrieves savings matching the filter, newest first.
	FindByFilter(ctx context.Context, userID uuid.UUID, filter SavingFilter) ([]*entity.Saving, error)

	// Update persists changes to an existing saving.
	Update(ctx context.Context, saving *entity.Saving) error

	// Delete removes a saving, scoped to the user.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
