package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ImageList is an ordered list of image URLs stored as a single JSON text
// column.
type ImageList []string

// Value implements the driver.Valuer interface.
func (l ImageList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface. The writer only ever stores a
// JSON array, so anything else in the column is a data-integrity error and
// must not be swallowed.
func (l *ImageList) Scan(value interface{}) error {
	if value == nil {
		*l = ImageList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("images column: unsupported type %T", value)
	}

	if err := json.Unmarshal(bytes, l); err != nil {
		return fmt.Errorf("images column: malformed blob: %w", err)
	}
	return nil
}

type Recipe struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"size:50" json:"category"`
	PrepTime    int       `gorm:"not null;default:0" json:"prepTime"`
	CookTime    int       `gorm:"not null;default:0" json:"cookTime"`
	Servings    int       `gorm:"not null;default:1" json:"servings"`
	Difficulty  string    `gorm:"size:20;not null;default:'easy'" json:"difficulty"`
	MainImage   string    `gorm:"size:255" json:"mainImage"`
	Images      ImageList `gorm:"type:text;not null;default:'[]'" json:"images"`
	IsFavorite  bool      `gorm:"not null;default:false" json:"isFavorite"`
	Notes       string    `gorm:"type:text" json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`

	Ingredients []RecipeIngredient `gorm:"foreignKey:RecipeID" json:"ingredients"`
	Steps       []CookingStep      `gorm:"foreignKey:RecipeID" json:"steps"`
	Tags        []RecipeTag        `gorm:"foreignKey:RecipeID" json:"tags"`
}

func (r *Recipe) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// RecipeIngredient belongs to exactly one recipe. Amount stays a free-form
// string so quantities like "a pinch" survive.
type RecipeIngredient struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RecipeID   uuid.UUID `gorm:"type:uuid;not null;index" json:"recipeId"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	Amount     string    `gorm:"size:100" json:"amount"`
	Unit       string    `gorm:"size:50" json:"unit"`
	IsOptional bool      `gorm:"not null;default:false" json:"isOptional"`
}

func (i *RecipeIngredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// CookingStep belongs to exactly one recipe. StepNumber is dense and starts
// at 1; the store recomputes it from array position on every write.
type CookingStep struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RecipeID    uuid.UUID `gorm:"type:uuid;not null;index" json:"recipeId"`
	StepNumber  int       `gorm:"not null" json:"stepNumber"`
	Instruction string    `gorm:"type:text;not null" json:"instruction"`
	Image       string    `gorm:"size:255" json:"image"`
}

func (s *CookingStep) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// RecipeTag is modeled but not yet exposed in the UI; the front end always
// writes an empty set.
type RecipeTag struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RecipeID uuid.UUID `gorm:"type:uuid;not null;index" json:"recipeId"`
	Name     string    `gorm:"size:50;not null" json:"name"`
	Color    string    `gorm:"size:20" json:"color"`
}

func (t *RecipeTag) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
