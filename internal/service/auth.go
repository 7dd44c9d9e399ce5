package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BIUSYZ/mycooook/internal/middleware"
	"github.com/BIUSYZ/mycooook/internal/models"
)

const tokenTTL = 24 * time.Hour

// AuthService issues and validates bearer tokens. Revoked tokens are kept in
// a redis denylist until they would have expired anyway.
type AuthService struct {
	db        *gorm.DB
	redis     *redis.Client
	jwtSecret string
}

// NewAuthService creates an AuthService. redisClient may be nil, in which
// case logout revocation is disabled.
func NewAuthService(db *gorm.DB, redisClient *redis.Client, jwtSecret string) *AuthService {
	return &AuthService{
		db:        db,
		redis:     redisClient,
		jwtSecret: jwtSecret,
	}
}

// Signup registers a new user and returns a signed token for it. A duplicate
// email is a validation failure, not an integrity failure.
func (s *AuthService) Signup(ctx context.Context, email, password string) (string, *models.User, error) {
	var existing models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error; err == nil {
		return "", nil, ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, fmt.Errorf("signup: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("signup: %w", err)
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return "", nil, fmt.Errorf("signup: %w", err)
	}

	token, err := s.generateToken(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// Login checks credentials and returns a signed token. Unknown email and bad
// password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	token, err := s.generateToken(user.ID, user.Email)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}

// GetUser fetches the user bound to an already-validated token.
func (s *AuthService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &user, nil
}

// Logout places the token on the denylist for its remaining lifetime.
func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	if s.redis == nil {
		return nil
	}
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return err
	}
	ttl := tokenTTL
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		ttl = time.Until(exp.Time)
	}
	if ttl <= 0 {
		return nil
	}
	return s.redis.Set(ctx, revokedKey(tokenString), "1", ttl).Err()
}

// ValidateToken parses and verifies a token, rejecting revoked ones.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*middleware.TokenClaims, error) {
	claims, err := s.parseToken(tokenString)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		revoked, err := s.redis.Exists(ctx, revokedKey(tokenString)).Result()
		if err != nil {
			return nil, fmt.Errorf("denylist check: %w", err)
		}
		if revoked > 0 {
			return nil, ErrTokenRevoked
		}
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, errors.New("invalid token claims")
	}
	return &middleware.TokenClaims{
		UserID: userID,
		Email:  claims.Email,
	}, nil
}

type tokenClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

func (s *AuthService) generateToken(userID uuid.UUID, email string) (string, error) {
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
		UserID: userID.String(),
		Email:  email,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *AuthService) parseToken(tokenString string) (*tokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func revokedKey(token string) string {
	return "auth:revoked:" + token
}
