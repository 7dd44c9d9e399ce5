package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BIUSYZ/mycooook/internal/models"
)

// IngredientOptionService manages the per-user autocomplete catalog.
type IngredientOptionService struct {
	db *gorm.DB
}

func NewIngredientOptionService(db *gorm.DB) *IngredientOptionService {
	return &IngredientOptionService{db: db}
}

func (s *IngredientOptionService) List(ctx context.Context, ownerID uuid.UUID) ([]models.IngredientOption, error) {
	options := make([]models.IngredientOption, 0)
	err := s.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("name ASC").
		Find(&options).Error
	if err != nil {
		return nil, fmt.Errorf("list ingredient options: %w", err)
	}
	return options, nil
}

func (s *IngredientOptionService) Create(ctx context.Context, ownerID uuid.UUID, name, category string) (*models.IngredientOption, error) {
	option := models.IngredientOption{
		UserID:   ownerID,
		Name:     name,
		Category: category,
	}
	if err := s.db.WithContext(ctx).Create(&option).Error; err != nil {
		return nil, fmt.Errorf("create ingredient option: %w", err)
	}
	return &option, nil
}

// Delete is owner-scoped and idempotent, same policy as recipe deletion.
func (s *IngredientOptionService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&models.IngredientOption{}).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("delete ingredient option: %w", err)
	}
	return nil
}
