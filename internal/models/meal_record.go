package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MealRecord associates a recipe with a date on a user's meal plan. The model
// is migrated but has no server surface yet; the client stubs it out.
type MealRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	RecipeID  uuid.UUID `gorm:"type:uuid;not null;index" json:"recipeId"`
	Date      string    `gorm:"size:10;not null" json:"date"` // YYYY-MM-DD
	MealType  string    `gorm:"size:20;not null" json:"mealType"`
	Notes     string    `gorm:"type:text" json:"notes"`
	Rating    int       `gorm:"check:rating >= 0 AND rating <= 5" json:"rating"`
	CreatedAt time.Time `json:"createdAt"`
}

func (m *MealRecord) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
