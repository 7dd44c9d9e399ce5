package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/BIUSYZ/mycooook/internal/database"
)

func setupAuthService(t *testing.T) *AuthService {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return NewAuthService(db, nil, "test-secret")
}

func TestSignupAndLogin(t *testing.T) {
	svc := setupAuthService(t)
	ctx := context.Background()

	token, user, err := svc.Signup(ctx, "cook@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "cook@example.com", user.Email)

	loginToken, loginUser, err := svc.Login(ctx, "cook@example.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, loginToken)
	assert.Equal(t, user.ID, loginUser.ID)
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc := setupAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Signup(ctx, "cook@example.com", "secret123")
	require.NoError(t, err)

	_, _, err = svc.Signup(ctx, "cook@example.com", "other-password")
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestLoginBadCredentials(t *testing.T) {
	svc := setupAuthService(t)
	ctx := context.Background()

	_, _, err := svc.Signup(ctx, "cook@example.com", "secret123")
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, "cook@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestValidateToken(t *testing.T) {
	svc := setupAuthService(t)
	ctx := context.Background()

	token, user, err := svc.Signup(ctx, "cook@example.com", "secret123")
	require.NoError(t, err)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "cook@example.com", claims.Email)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := setupAuthService(t)

	_, err := svc.ValidateToken(context.Background(), "not-a-token")
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	svc := setupAuthService(t)
	ctx := context.Background()

	token, _, err := svc.Signup(ctx, "cook@example.com", "secret123")
	require.NoError(t, err)

	other := NewAuthService(nil, nil, "different-secret")
	_, err = other.ValidateToken(ctx, token)
	assert.Error(t, err)
}
