package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BIUSYZ/mycooook/internal/middleware"
	"github.com/BIUSYZ/mycooook/internal/service"
)

type RecipeHandler struct {
	recipes *service.RecipeService
	logger  *zap.Logger
}

func NewRecipeHandler(recipes *service.RecipeService, logger *zap.Logger) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, logger: logger}
}

// RegisterRoutes mounts the recipe routes on an authenticated group.
func (h *RecipeHandler) RegisterRoutes(router *gin.RouterGroup) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("", h.ListRecipes)
		recipes.GET("/:id", h.GetRecipe)
		recipes.POST("", h.CreateRecipe)
		recipes.PUT("/:id", h.UpdateRecipe)
		recipes.DELETE("/:id", h.DeleteRecipe)
	}
}

func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	recipes, err := h.recipes.List(c.Request.Context(), ownerID)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	respondJSON(c, http.StatusOK, recipes)
}

func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	recipe, err := h.recipes.Get(c.Request.Context(), ownerID, id)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	respondJSON(c, http.StatusOK, recipe)
}

func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req CreateRecipeRequest
	if err := bindJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	recipe, err := h.recipes.Create(c.Request.Context(), ownerID,
		service.RecipeInput{
			Name:        req.Name,
			Description: req.Description,
			Category:    req.Category,
			PrepTime:    req.PrepTime,
			CookTime:    req.CookTime,
			Servings:    req.Servings,
			Difficulty:  req.Difficulty,
			MainImage:   req.MainImage,
			Images:      req.Images,
			IsFavorite:  req.IsFavorite,
			Notes:       req.Notes,
		},
		ingredientInputs(req.Ingredients),
		stepInputs(req.Steps),
		tagInputs(req.Tags),
	)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	respondJSON(c, http.StatusCreated, recipe)
}

func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	var req UpdateRecipeRequest
	if err := bindJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	recipe, err := h.recipes.Update(c.Request.Context(), ownerID, id,
		service.RecipePatch{
			Name:        req.Name,
			Description: req.Description,
			Category:    req.Category,
			PrepTime:    req.PrepTime,
			CookTime:    req.CookTime,
			Servings:    req.Servings,
			Difficulty:  req.Difficulty,
			MainImage:   req.MainImage,
			Images:      req.Images,
			IsFavorite:  req.IsFavorite,
			Notes:       req.Notes,
		},
		ingredientInputs(req.Ingredients),
		stepInputs(req.Steps),
	)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	respondJSON(c, http.StatusOK, recipe)
}

func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		// Delete is idempotent; a garbage id deletes nothing.
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	if err := h.recipes.Delete(c.Request.Context(), ownerID, id); err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func ingredientInputs(payloads []IngredientPayload) []service.IngredientInput {
	inputs := make([]service.IngredientInput, len(payloads))
	for i, p := range payloads {
		inputs[i] = service.IngredientInput{
			Name:       p.Name,
			Amount:     p.Amount,
			Unit:       p.Unit,
			IsOptional: p.IsOptional,
		}
	}
	return inputs
}

func stepInputs(payloads []StepPayload) []service.StepInput {
	inputs := make([]service.StepInput, len(payloads))
	for i, p := range payloads {
		// Client-supplied step numbers are discarded.
		inputs[i] = service.StepInput{
			Instruction: p.Instruction,
			Image:       p.Image,
		}
	}
	return inputs
}

func tagInputs(payloads []TagPayload) []service.TagInput {
	inputs := make([]service.TagInput, len(payloads))
	for i, p := range payloads {
		inputs[i] = service.TagInput{Name: p.Name, Color: p.Color}
	}
	return inputs
}
