// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetPeriod represents the time window a budget ceiling applies to.
type BudgetPeriod string

const (
	BudgetPeriodWeek  BudgetPeriod = "week"
	BudgetPeriodMonth BudgetPeriod = "month"
	BudgetPeriodYear  BudgetPeriod = "year"
)

// IsValid reports whether the period is one of the closed set of values.
func (p BudgetPeriod) IsValid() bool {
	return p == BudgetPeriodWeek || p == BudgetPeriodMonth || p == BudgetPeriodYear
}

// Budget represents a per-category spending ceiling.
// Storage does not enforce uniqueness per (user, category, period);
// duplicates are tolerated and each is evaluated independently.
type Budget struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Category  string
	Amount    decimal.Decimal
	Period    BudgetPeriod
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBudget creates a new Budget entity.
func NewBudget(
	userID uuid.UUID,
	category string,
	amount decimal.Decimal,
	period BudgetPeriod,
) *Budget {
	now := time.Now().UTC()

	return &Budget{
		ID:        uuid.New(),
		UserID:    userID,
		Category:  category,
		Amount:    amount,
		Period:    period,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
