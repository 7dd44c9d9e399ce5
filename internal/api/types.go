package api

// Request types use the internal camelCase form; bindJSON normalizes the
// snake_case wire form into it before decoding.

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type IngredientPayload struct {
	Name       string `json:"name" binding:"required"`
	Amount     string `json:"amount"`
	Unit       string `json:"unit"`
	IsOptional bool   `json:"isOptional"`
}

// StepPayload accepts a step number for compatibility with older clients but
// the store renumbers from array position on every write.
type StepPayload struct {
	StepNumber  int    `json:"stepNumber"`
	Instruction string `json:"instruction" binding:"required"`
	Image       string `json:"image"`
}

type TagPayload struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

type CreateRecipeRequest struct {
	Name        string              `json:"name" binding:"required"`
	Description string              `json:"description"`
	Category    string              `json:"category"`
	PrepTime    int                 `json:"prepTime" binding:"min=0"`
	CookTime    int                 `json:"cookTime" binding:"min=0"`
	Servings    int                 `json:"servings" binding:"required,min=1"`
	Difficulty  string              `json:"difficulty" binding:"required,oneof=easy medium hard"`
	MainImage   string              `json:"mainImage"`
	Images      []string            `json:"images"`
	IsFavorite  bool                `json:"isFavorite"`
	Notes       string              `json:"notes"`
	Ingredients []IngredientPayload `json:"ingredients" binding:"dive"`
	Steps       []StepPayload       `json:"steps" binding:"dive"`
	Tags        []TagPayload        `json:"tags" binding:"dive"`
}

// UpdateRecipeRequest is a partial patch; nil scalar fields are left
// unchanged. Ingredients and steps always replace the stored collections.
// Tags are accepted for payload compatibility but not replaced on update.
type UpdateRecipeRequest struct {
	Name        *string             `json:"name"`
	Description *string             `json:"description"`
	Category    *string             `json:"category"`
	PrepTime    *int                `json:"prepTime" binding:"omitempty,min=0"`
	CookTime    *int                `json:"cookTime" binding:"omitempty,min=0"`
	Servings    *int                `json:"servings" binding:"omitempty,min=1"`
	Difficulty  *string             `json:"difficulty" binding:"omitempty,oneof=easy medium hard"`
	MainImage   *string             `json:"mainImage"`
	Images      []string            `json:"images"`
	IsFavorite  *bool               `json:"isFavorite"`
	Notes       *string             `json:"notes"`
	Ingredients []IngredientPayload `json:"ingredients" binding:"dive"`
	Steps       []StepPayload       `json:"steps" binding:"dive"`
	Tags        []TagPayload        `json:"tags" binding:"dive"`
}

type CreateIngredientOptionRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category"`
}
