package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "PantryChef", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "pantrychef", cfg.Database.Database)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, 24*time.Hour, cfg.Auth.JWTExpiration)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.AI.BaseURL)
	assert.Equal(t, "meta-llama/llama-3.1-8b-instruct:free", cfg.AI.Model)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("PANTRYCHEF_SERVER_PORT", "9090")
	t.Setenv("PANTRYCHEF_DATABASE_DRIVER", "sqlite")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
}

func TestLoad_ProductionRequiresJWTSecret(t *testing.T) {
	t.Setenv("PANTRYCHEF_APP_ENVIRONMENT", "production")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "jwt_secret")
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "db.internal",
			Port:     5433,
			Username: "chef",
			Password: "secret",
			Database: "pantrychef",
			SSLMode:  "require",
		},
	}

	assert.Equal(t,
		"host=db.internal port=5433 user=chef password=secret dbname=pantrychef sslmode=require",
		cfg.GetDSN())
}
