package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Port:             "8080",
		AppEnv:           "development",
		JWTSecret:        "secret",
		MongoURI:         "mongodb://localhost:27017",
		MongoDatabase:    "devfolio",
		StorageEndpoint:  "localhost:9000",
		StorageAccessKey: "minioadmin",
		StorageSecretKey: "minioadmin",
		StorageBucket:    "devfolio",
	}
}

func TestValidateAcceptsCompleteConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidateNamesEveryMissingVariable(t *testing.T) {
	cfg := validConfig()
	cfg.StorageEndpoint = ""
	cfg.StorageAccessKey = "  "
	cfg.StorageSecretKey = ""
	cfg.StorageBucket = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Equal(t, "missing required environment variables: STORAGE_ENDPOINT, STORAGE_ACCESS_KEY, STORAGE_SECRET_KEY, STORAGE_BUCKET", err.Error())
}

func TestValidateReportsSingleMissingVariable(t *testing.T) {
	cfg := validConfig()
	cfg.StorageBucket = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "STORAGE_BUCKET")
	assert.NotContains(t, err.Error(), "STORAGE_ENDPOINT")
}

func TestIsProduction(t *testing.T) {
	cfg := validConfig()
	assert.False(t, cfg.IsProduction())

	cfg.AppEnv = "production"
	assert.True(t, cfg.IsProduction())
}
