package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IngredientOption is a user-scoped catalog entry used as an autocomplete
// source. It has no relationship to recipe rows.
type IngredientOption struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Category  string    `gorm:"size:50" json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

func (o *IngredientOption) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
