// Package config loads application configuration from environment variables.
package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the service.
type Config struct {
	Port      string
	AppEnv    string
	JWTSecret string

	// Document database
	MongoURI      string
	MongoDatabase string

	// Object storage (S3-compatible: MinIO locally, IDrive E2 / ArvanCloud in production).
	// All four storage values are mandatory; Validate reports the missing ones.
	StorageEndpoint  string
	StorageAccessKey string
	StorageSecretKey string
	StorageBucket    string
	StorageUseSSL    bool
}

// Load reads configuration from a .env file (if present) and environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading from environment")
	}

	return &Config{
		Port:      getEnv("PORT", "8080"),
		AppEnv:    getEnv("APP_ENV", "development"),
		JWTSecret: getEnv("JWT_SECRET", "change_me_in_production"),

		MongoURI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnv("MONGO_DATABASE", "devfolio"),

		StorageEndpoint:  os.Getenv("STORAGE_ENDPOINT"),
		StorageAccessKey: os.Getenv("STORAGE_ACCESS_KEY"),
		StorageSecretKey: os.Getenv("STORAGE_SECRET_KEY"),
		StorageBucket:    os.Getenv("STORAGE_BUCKET"),
		StorageUseSSL:    getEnv("STORAGE_USE_SSL", "false") == "true",
	}
}

// Validate checks that every mandatory variable is present. It runs once at
// boot so a misconfigured process refuses to start instead of failing on the
// first upload. The error names every missing variable.
func (c *Config) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"STORAGE_ENDPOINT", c.StorageEndpoint},
		{"STORAGE_ACCESS_KEY", c.StorageAccessKey},
		{"STORAGE_SECRET_KEY", c.StorageSecretKey},
		{"STORAGE_BUCKET", c.StorageBucket},
	}

	var missing []string
	for _, v := range required {
		if strings.TrimSpace(v.value) == "" {
			missing = append(missing, v.name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return nil
}

// IsProduction returns true when the app is running in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
