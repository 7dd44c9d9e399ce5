package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BIUSYZ/mycooook/internal/models"
)

// RecipeInput carries the scalar fields for creating a recipe.
type RecipeInput struct {
	Name        string
	Description string
	Category    string
	PrepTime    int
	CookTime    int
	Servings    int
	Difficulty  string
	MainImage   string
	Images      []string
	IsFavorite  bool
	Notes       string
}

// RecipePatch carries a partial update; nil fields are left unchanged.
// Images is the exception: the stored blob is always rewritten, defaulting to
// an empty list when the field is absent.
type RecipePatch struct {
	Name        *string
	Description *string
	Category    *string
	PrepTime    *int
	CookTime    *int
	Servings    *int
	Difficulty  *string
	MainImage   *string
	Images      []string
	IsFavorite  *bool
	Notes       *string
}

type IngredientInput struct {
	Name       string
	Amount     string
	Unit       string
	IsOptional bool
}

// StepInput deliberately has no step number; the store derives it from array
// position on every write.
type StepInput struct {
	Instruction string
	Image       string
}

type TagInput struct {
	Name  string
	Color string
}

// RecipeService owns recipe rows and their child collections. Every
// operation is scoped by the owning user's id.
type RecipeService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewRecipeService(db *gorm.DB, logger *zap.Logger) *RecipeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecipeService{db: db, logger: logger}
}

// withDetails preloads the full aggregate: ingredients, steps in execution
// order, and tags.
func withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Ingredients").
		Preload("Steps", func(db *gorm.DB) *gorm.DB {
			return db.Order("step_number ASC")
		}).
		Preload("Tags")
}

// List returns all recipes owned by ownerID, newest first.
func (s *RecipeService) List(ctx context.Context, ownerID uuid.UUID) ([]models.Recipe, error) {
	recipes := make([]models.Recipe, 0)
	err := withDetails(s.db.WithContext(ctx)).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&recipes).Error
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	for i := range recipes {
		normalizeChildren(&recipes[i])
	}
	return recipes, nil
}

// Get fetches one recipe if and only if it is owned by ownerID.
func (s *RecipeService) Get(ctx context.Context, ownerID, id uuid.UUID) (*models.Recipe, error) {
	var recipe models.Recipe
	err := withDetails(s.db.WithContext(ctx)).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&recipe).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	normalizeChildren(&recipe)
	return &recipe, nil
}

// Create inserts the recipe row and all child rows in one unit of work and
// returns the created aggregate. Step numbers are derived from array
// position, same as on update.
func (s *RecipeService) Create(ctx context.Context, ownerID uuid.UUID, in RecipeInput, ingredients []IngredientInput, steps []StepInput, tags []TagInput) (*models.Recipe, error) {
	recipe := models.Recipe{
		UserID:      ownerID,
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		PrepTime:    in.PrepTime,
		CookTime:    in.CookTime,
		Servings:    in.Servings,
		Difficulty:  in.Difficulty,
		MainImage:   in.MainImage,
		Images:      imageList(in.Images),
		IsFavorite:  in.IsFavorite,
		Notes:       in.Notes,
	}

	for _, ing := range ingredients {
		recipe.Ingredients = append(recipe.Ingredients, models.RecipeIngredient{
			Name:       ing.Name,
			Amount:     ing.Amount,
			Unit:       ing.Unit,
			IsOptional: ing.IsOptional,
		})
	}
	for i, st := range steps {
		recipe.Steps = append(recipe.Steps, models.CookingStep{
			StepNumber:  i + 1,
			Instruction: st.Instruction,
			Image:       st.Image,
		})
	}
	for _, tag := range tags {
		recipe.Tags = append(recipe.Tags, models.RecipeTag{
			Name:  tag.Name,
			Color: tag.Color,
		})
	}

	if err := s.db.WithContext(ctx).Create(&recipe).Error; err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}
	normalizeChildren(&recipe)
	return &recipe, nil
}

// Update applies a partial patch to the recipe row and replaces the entire
// ingredient and step collections, all inside one transaction. If the recipe
// does not exist or is not owned by ownerID, the whole operation aborts with
// ErrNotFound and no partial effect.
func (s *RecipeService) Update(ctx context.Context, ownerID, id uuid.UUID, patch RecipePatch, ingredients []IngredientInput, steps []StepInput) (*models.Recipe, error) {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.Recipe
		if err := tx.Where("id = ? AND user_id = ?", id, ownerID).First(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		updates := patchColumns(patch)
		if err := tx.Model(&models.Recipe{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}

		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if len(ingredients) > 0 {
			rows := make([]models.RecipeIngredient, len(ingredients))
			for i, ing := range ingredients {
				rows[i] = models.RecipeIngredient{
					RecipeID:   id,
					Name:       ing.Name,
					Amount:     ing.Amount,
					Unit:       ing.Unit,
					IsOptional: ing.IsOptional,
				}
			}
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}

		if err := tx.Where("recipe_id = ?", id).Delete(&models.CookingStep{}).Error; err != nil {
			return err
		}
		if len(steps) > 0 {
			rows := make([]models.CookingStep, len(steps))
			for i, st := range steps {
				rows[i] = models.CookingStep{
					RecipeID:    id,
					StepNumber:  i + 1,
					Instruction: st.Instruction,
					Image:       st.Image,
				}
			}
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrNotFound
		}
		s.logger.Error("recipe update transaction failed",
			zap.String("recipe_id", id.String()), zap.Error(err))
		return nil, fmt.Errorf("update recipe: %w", err)
	}

	return s.Get(ctx, ownerID, id)
}

// Delete removes the recipe and its children. Deleting a non-existent or
// non-owned recipe is a silent no-op.
func (s *RecipeService) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var recipe models.Recipe
		if err := tx.Where("id = ? AND user_id = ?", id, ownerID).First(&recipe).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}

		// Cascade is enforced here, not assumed from the engine.
		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeIngredient{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.CookingStep{}).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&models.RecipeTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Recipe{}, "id = ?", id).Error
	})
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	return nil
}

// normalizeChildren replaces nil child collections with empty slices so the
// serialized form always carries arrays.
func normalizeChildren(r *models.Recipe) {
	if r.Ingredients == nil {
		r.Ingredients = []models.RecipeIngredient{}
	}
	if r.Steps == nil {
		r.Steps = []models.CookingStep{}
	}
	if r.Tags == nil {
		r.Tags = []models.RecipeTag{}
	}
}

func imageList(images []string) models.ImageList {
	if images == nil {
		return models.ImageList{}
	}
	return models.ImageList(images)
}

// patchColumns maps supplied patch fields to their columns. Images is always
// written, defaulting to an empty list.
func patchColumns(patch RecipePatch) map[string]interface{} {
	updates := map[string]interface{}{
		"images": imageList(patch.Images),
	}
	if patch.Name != nil {
		updates["name"] = *patch.Name
	}
	if patch.Description != nil {
		updates["description"] = *patch.Description
	}
	if patch.Category != nil {
		updates["category"] = *patch.Category
	}
	if patch.PrepTime != nil {
		updates["prep_time"] = *patch.PrepTime
	}
	if patch.CookTime != nil {
		updates["cook_time"] = *patch.CookTime
	}
	if patch.Servings != nil {
		updates["servings"] = *patch.Servings
	}
	if patch.Difficulty != nil {
		updates["difficulty"] = *patch.Difficulty
	}
	if patch.MainImage != nil {
		updates["main_image"] = *patch.MainImage
	}
	if patch.IsFavorite != nil {
		updates["is_favorite"] = *patch.IsFavorite
	}
	if patch.Notes != nil {
		updates["notes"] = *patch.Notes
	}
	return updates
}
