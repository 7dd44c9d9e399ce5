package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BIUSYZ/mycooook/internal/service"
)

// writeServiceError maps the service error taxonomy to protocol statuses.
// Storage-engine detail is logged, never returned to the client.
func writeServiceError(c *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrUserExists):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrTokenRevoked):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	default:
		logger.Error("internal error",
			zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
