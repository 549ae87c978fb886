package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("ADDR", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")
	t.Setenv("SECRET_KEY", "")
	t.Setenv("ACCESS_TOKEN_EXPIRY", "")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "mongodb://localhost:27017", cfg.DatabaseURL)
	assert.Equal(t, "dataset_api", cfg.DatabaseName)
	assert.Equal(t, 1800*time.Second, cfg.AccessTokenExpiry)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("DATABASE_URL", "mongodb://db:27017")
	t.Setenv("DATABASE_NAME", "datasets_test")
	t.Setenv("SECRET_KEY", "env-secret")
	t.Setenv("ACCESS_TOKEN_EXPIRY", "45m")

	cfg := Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "mongodb://db:27017", cfg.DatabaseURL)
	assert.Equal(t, "datasets_test", cfg.DatabaseName)
	assert.Equal(t, "env-secret", cfg.SecretKey)
	assert.Equal(t, 45*time.Minute, cfg.AccessTokenExpiry)
}

func TestGetEnvAsDuration_Invalid(t *testing.T) {
	t.Setenv("SOME_DURATION", "not-a-duration")

	assert.Equal(t, time.Minute, GetEnvAsDuration("SOME_DURATION", time.Minute))
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("SOME_INT", "42")
	assert.Equal(t, 42, GetEnvAsInt("SOME_INT", 7))

	t.Setenv("SOME_INT", "abc")
	assert.Equal(t, 7, GetEnvAsInt("SOME_INT", 7))
}
