// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/fintrack/backend/internal/domain/entity"
)

// SavingModel represents the savings table in the database.
type SavingModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Goal        string          `gorm:"type:varchar(100);not null;index"`
	Description string          `gorm:"type:varchar(255)"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the SavingModel.
func (SavingModel) TableName() string {
	return "savings"
}

// ToEntity converts a SavingModel to a domain Saving entity.
func (m *SavingModel) ToEntity() *entity.Saving {
	return &entity.Saving{
		ID:          m.ID,
		UserID:      m.UserID,
		Amount:      m.Amount,
		Goal:        m.Goal,
		Description: m.Description,
		Date:        m.Date,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// SavingFromEntity converts a domain Saving entity to a SavingModel.
func SavingFromEntity(s *entity.Saving) *SavingModel {
	return &SavingModel{
		ID:          s.ID,
		UserID:      s.UserID,
		Amount:      s.Amount,
		Goal:        s.Goal,
		Description: s.Description,
		Date:        s.Date,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
