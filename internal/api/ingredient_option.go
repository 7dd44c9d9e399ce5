package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BIUSYZ/mycooook/internal/middleware"
	"github.com/BIUSYZ/mycooook/internal/service"
)

type IngredientOptionHandler struct {
	options *service.IngredientOptionService
	logger  *zap.Logger
}

func NewIngredientOptionHandler(options *service.IngredientOptionService, logger *zap.Logger) *IngredientOptionHandler {
	return &IngredientOptionHandler{options: options, logger: logger}
}

func (h *IngredientOptionHandler) RegisterRoutes(router *gin.RouterGroup) {
	options := router.Group("/ingredient-options")
	{
		options.GET("", h.ListOptions)
		options.POST("", h.CreateOption)
		options.DELETE("/:id", h.DeleteOption)
	}
}

func (h *IngredientOptionHandler) ListOptions(c *gin.Context) {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	options, err := h.options.List(c.Request.Context(), ownerID)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	respondJSON(c, http.StatusOK, options)
}

func (h *IngredientOptionHandler) CreateOption(c *gin.Context) {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	var req CreateIngredientOptionRequest
	if err := bindJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	option, err := h.options.Create(c.Request.Context(), ownerID, req.Name, req.Category)
	if err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	respondJSON(c, http.StatusCreated, option)
}

func (h *IngredientOptionHandler) DeleteOption(c *gin.Context) {
	ownerID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}

	if err := h.options.Delete(c.Request.Context(), ownerID, id); err != nil {
		writeServiceError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
