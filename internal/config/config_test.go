package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresMongoURLAndSecret(t *testing.T) {
	t.Setenv("MONGO_URL", "")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)

	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	_, err = Load()
	require.Error(t, err)

	t.Setenv("JWT_SECRET", "secret")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURL)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "https://yts.mx/api/v2", cfg.CatalogBaseURL)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("TOKEN_TTL", "30m")
	t.Setenv("LOGIN_MAX_TRIES", "3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 3, cfg.LoginMaxTries)
}

func TestLoad_BarePortGetsColonPrefix(t *testing.T) {
	t.Setenv("MONGO_URL", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "secret")

	t.Setenv("PORT", "8080")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Addr)

	t.Setenv("PORT", "0.0.0.0:9090")
	cfg, err = Load()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9090", cfg.Addr)
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("SOME_INT", "42")
	t.Setenv("SOME_DURATION", "15s")
	t.Setenv("BAD_INT", "not-a-number")

	assert.Equal(t, 42, GetEnvAsInt("SOME_INT", 1))
	assert.Equal(t, 1, GetEnvAsInt("BAD_INT", 1))
	assert.Equal(t, 1, GetEnvAsInt("MISSING_INT", 1))
	assert.Equal(t, 15*time.Second, GetEnvAsDuration("SOME_DURATION", time.Minute))
	assert.Equal(t, time.Minute, GetEnvAsDuration("MISSING_DURATION", time.Minute))
	assert.Equal(t, "fallback", GetEnvAsString("MISSING_STRING", "fallback"))
}
