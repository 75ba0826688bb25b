package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "fitadmin-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Mongo.URI)
	assert.Equal(t, time.Hour, cfg.Storage.PresignExpiration)
	assert.Equal(t, 3600, cfg.Stream.MaxDurationSeconds)
	assert.Equal(t, 5*24*time.Hour, cfg.Auth.SessionTTL)
	assert.Equal(t, "session", cfg.Cookie.Name)
	assert.Equal(t, "lax", cfg.Cookie.SameSite)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("FITADMIN_APP_PORT", "9090")
	t.Setenv("FITADMIN_MONGO_DATABASE", "fitadmin_test")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "fitadmin_test", cfg.Mongo.Database)
}

func TestLoad_InvalidSameSite(t *testing.T) {
	t.Setenv("FITADMIN_COOKIE_SAME_SITE", "bogus")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_ProductionRequiresSecrets(t *testing.T) {
	t.Setenv("FITADMIN_APP_ENV", "production")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_ProductionFullyConfigured(t *testing.T) {
	t.Setenv("FITADMIN_APP_ENV", "production")
	t.Setenv("FITADMIN_AUTH_SESSION_SECRET", "prod-session-secret")
	t.Setenv("FITADMIN_AUTH_IDENTITY_SECRET", "prod-identity-secret")
	t.Setenv("FITADMIN_COOKIE_SECURE", "true")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "json", cfg.Log.Format)
}
