package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BIUSYZ/mycooook/internal/api"
	"github.com/BIUSYZ/mycooook/internal/middleware"
)

// SetupRouter configures the application routes.
func SetupRouter(
	authHandler *api.AuthHandler,
	recipeHandler *api.RecipeHandler,
	uploadHandler *api.UploadHandler,
	optionHandler *api.IngredientOptionHandler,
	validator middleware.TokenValidator,
	logger *zap.Logger,
	uploadsDir string,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORS())

	// Locally stored uploads are served straight from disk.
	if uploadsDir != "" {
		router.Static("/uploads", uploadsDir)
	}

	apiGroup := router.Group("/api")

	auth := apiGroup.Group("/auth")
	{
		auth.POST("/signup", authHandler.Signup)
		auth.POST("/login", authHandler.Login)
	}

	protected := apiGroup.Group("")
	protected.Use(middleware.AuthMiddleware(validator))
	{
		protected.GET("/auth/me", authHandler.Me)
		protected.POST("/auth/logout", authHandler.Logout)
		protected.POST("/upload", uploadHandler.Upload)

		recipeHandler.RegisterRoutes(protected)
		optionHandler.RegisterRoutes(protected)
	}

	return router
}
