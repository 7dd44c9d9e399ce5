package api_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BIUSYZ/mycooook/internal/api"
	"github.com/BIUSYZ/mycooook/internal/database"
	"github.com/BIUSYZ/mycooook/internal/router"
	"github.com/BIUSYZ/mycooook/internal/service"
)

// setupTestRouter builds the full application wired against an in-memory
// sqlite database and a temp-dir blob store.
func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	logger := zap.NewNop()
	authService := service.NewAuthService(db, nil, "test-secret")
	recipeService := service.NewRecipeService(db, logger)
	optionService := service.NewIngredientOptionService(db)
	blobStore, err := service.NewLocalBlobStore(t.TempDir())
	require.NoError(t, err)

	engine := router.SetupRouter(
		api.NewAuthHandler(authService, logger),
		api.NewRecipeHandler(recipeService, logger),
		api.NewUploadHandler(blobStore, logger),
		api.NewIngredientOptionHandler(optionService, logger),
		authService,
		logger,
		blobStore.Dir(),
	)
	return engine, db
}

// signupTestUser registers a user over the API and returns the bearer token.
func signupTestUser(t *testing.T, engine *gin.Engine, email string) string {
	w := doJSON(t, engine, "POST", "/api/auth/signup", "", map[string]interface{}{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, 200, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	token, ok := resp["token"].(string)
	require.True(t, ok)
	require.NotEmpty(t, token)
	return token
}

// doJSON performs a JSON request against the engine; body may be nil.
func doJSON(t *testing.T, engine *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}
