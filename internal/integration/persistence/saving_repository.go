// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/fintrack/backend/internal/application/adapter"
	"github.com/fintrack/backend/internal/domain/entity"
	domainerror "github.com/fintrack/backend/internal/domain/error"
	"github.com/fintrack/backend/internal/integration/persistence/model"
)

// savingRepository implements the adapter.SavingRepository interface.
type savingRepository struct {
	db *gorm.DB
}

// NewSavingRepository creates a new saving repository instance.
func NewSavingRepository(db *gorm.DB) adapter.SavingRepository {
	return &savingRepository{
		db: db,
	}
}

// Create creates a new saving in the database.
func (r *savingRepository) Create(ctx context.Context, saving *entity.Saving) error {
	savingModel := model.SavingFromEntity(saving)
	result := r.db.WithContext(ctx).Create(savingModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a saving by its ID, scoped to the user.
func (r *savingRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Saving, error) {
	var savingModel model.SavingModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&savingModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrSavingNotFound
		}
		return nil, result.Error
	}
	return savingModel.ToEntity(), nil
}

// FindByUser retrieves all savings for a given user, newest first.
func (r *savingRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Saving, error) {
	var savingModels []model.SavingModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, created_at DESC").
		Find(&savingModels)
	if result.Error != nil {
		return nil, result.Error
	}

	savings := make([]*entity.Saving, len(savingModels))
	for i, sm := range savingModels {
		savings[i] = sm.ToEntity()
	}
	return savings, nil
}

// FindByFilter retrieves savings matching the filter, newest first.
// The goal filter is a case-insensitive substring search.
func (r *savingRepository) FindByFilter(ctx context.Context, userID uuid.UUID, filter adapter.SavingFilter) ([]*entity.Saving, error) {
	query := r.db.WithContext(ctx).
		Model(&model.SavingModel{}).
		Where("user_id = ?", userID)

	if filter.StartDate != nil {
		query = query.Where("date >= ?", filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", filter.EndDate)
	}
	if filter.Goal != "" {
		query = query.Where("LOWER(goal) LIKE ?", likePattern(filter.Goal))
	}

	var savingModels []model.SavingModel
	result := query.
		Order("date DESC, created_at DESC").
		Find(&savingModels)
	if result.Error != nil {
		return nil, result.Error
	}

	savings := make([]*entity.Saving, len(savingModels))
	for i, sm := range savingModels {
		savings[i] = sm.ToEntity()
	}
	return savings, nil
}

// Update persists changes to an existing saving.
func (r *savingRepository) Update(ctx context.Context, saving *entity.Saving) error {
	savingModel := model.SavingFromEntity(saving)
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", saving.ID, saving.UserID).
		Save(savingModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a saving, scoped to the user.
func (r *savingRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.SavingModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrSavingNotFound
	}
	return nil
}

// likePattern builds a case-insensitive LIKE pattern for substring search.
func likePattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}
