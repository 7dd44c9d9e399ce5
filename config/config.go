package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	ServerPort string

	// Database
	DBDriver   string // postgres | sqlite
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	SQLitePath string

	// Redis (optional; disables logout revocation when empty)
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Auth
	JWTSecret string

	// Uploads
	StorageBackend string // local | s3
	UploadDir      string
	S3Bucket       string
	S3Region       string
}

// Load reads configuration from the environment. A .env file is honored in
// development but never required.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:     getEnv("SERVER_PORT", "3000"),
		DBDriver:       getEnv("DB_DRIVER", "postgres"),
		DBHost:         getEnv("DB_HOST", "localhost"),
		DBPort:         getEnv("DB_PORT", "5432"),
		DBUser:         getEnv("DB_USER", "postgres"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         getEnv("DB_NAME", "mycooook"),
		DBSSLMode:      getEnv("DB_SSL_MODE", "disable"),
		SQLitePath:     getEnv("SQLITE_PATH", "mycooook.db"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		StorageBackend: getEnv("STORAGE_BACKEND", "local"),
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		S3Bucket:       os.Getenv("S3_BUCKET"),
		S3Region:       getEnv("S3_REGION", "us-east-1"),
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("REDIS_DB must be an integer: %w", err)
		}
		cfg.RedisDB = n
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.DBDriver != "postgres" && c.DBDriver != "sqlite" {
		return fmt.Errorf("DB_DRIVER must be postgres or sqlite, got %q", c.DBDriver)
	}
	if c.StorageBackend != "local" && c.StorageBackend != "s3" {
		return fmt.Errorf("STORAGE_BACKEND must be local or s3, got %q", c.StorageBackend)
	}
	if c.StorageBackend == "s3" && c.S3Bucket == "" {
		return fmt.Errorf("S3_BUCKET is required when STORAGE_BACKEND=s3")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
