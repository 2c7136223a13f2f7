// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Saving represents a deposit toward a savings goal.
type Saving struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      decimal.Decimal // Always positive
	Goal        string
	Description string
	Date        time.Time // Day granularity
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewSaving creates a new Saving entity.
func NewSaving(
	userID uuid.UUID,
	amount decimal.Decimal,
	goal string,
	description string,
	date time.Time,
) *Saving {
	now := time.Now().UTC()

	return &Saving{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      amount,
		Goal:        goal,
		Description: description,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
