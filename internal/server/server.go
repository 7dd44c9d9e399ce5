package server

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BIUSYZ/mycooook/config"
	"github.com/BIUSYZ/mycooook/internal/api"
	"github.com/BIUSYZ/mycooook/internal/database"
	"github.com/BIUSYZ/mycooook/internal/router"
	"github.com/BIUSYZ/mycooook/internal/service"
)

// Server wires the store, services and HTTP layer together. All dependencies
// are constructed here and injected explicitly; there are no package-level
// singletons.
type Server struct {
	http   *http.Server
	db     *gorm.DB
	logger *zap.Logger
}

// New builds a fully wired server from configuration.
func New(cfg *config.Config, logger *zap.Logger) (*Server, error) {
	db, err := database.New(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	var blobStore service.BlobStore
	uploadsDir := ""
	switch cfg.StorageBackend {
	case "s3":
		blobStore, err = service.NewS3BlobStore(context.Background(), cfg.S3Bucket, cfg.S3Region)
		if err != nil {
			return nil, err
		}
	default:
		local, err := service.NewLocalBlobStore(cfg.UploadDir)
		if err != nil {
			return nil, err
		}
		blobStore = local
		uploadsDir = local.Dir()
	}

	authService := service.NewAuthService(db, redisClient, cfg.JWTSecret)
	recipeService := service.NewRecipeService(db, logger)
	optionService := service.NewIngredientOptionService(db)

	engine := router.SetupRouter(
		api.NewAuthHandler(authService, logger),
		api.NewRecipeHandler(recipeService, logger),
		api.NewUploadHandler(blobStore, logger),
		api.NewIngredientOptionHandler(optionService, logger),
		authService,
		logger,
		uploadsDir,
	)

	return &Server{
		http: &http.Server{
			Addr:    ":" + cfg.ServerPort,
			Handler: engine,
		},
		db:     db,
		logger: logger,
	}, nil
}

// Start blocks serving HTTP until Shutdown is called.
func (s *Server) Start() error {
	s.logger.Info("server listening", zap.String("addr", s.http.Addr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and closes the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
