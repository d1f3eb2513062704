package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "4000", config.App.Port)
	assert.Equal(t, "postgres", config.Database.Driver)
	assert.Equal(t, "tourSport", config.Database.Name)
	assert.Equal(t, int32(10), config.Database.MaxConns)
	assert.Equal(t, 10*time.Hour, config.JWT.Expiry())
	assert.True(t, config.JWT.CookieSecure)
	assert.Equal(t, DefaultCORSOrigins, config.CORS.Origins)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "8080")
	t.Setenv("STORE_DRIVER", "Mongo")
	t.Setenv("JWT_EXPIRY_HOURS", "2")
	t.Setenv("COOKIE_SECURE", "false")
	t.Setenv("CORS_ORIGINS", "http://a.test, ,http://b.test")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", config.App.Port)
	assert.Equal(t, "mongo", config.Database.Driver)
	assert.Equal(t, 2*time.Hour, config.JWT.Expiry())
	assert.False(t, config.JWT.CookieSecure)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, config.CORS.Origins)
}

func TestLoadConfig_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_RejectsNonPositiveExpiry(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_EXPIRY_HOURS", "0")

	_, err := LoadConfig()
	assert.Error(t, err)
}
