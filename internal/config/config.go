package config

import (
	"time"

	"github.com/joho/godotenv"
)

// Config holds the process-wide settings. It is built once in main and
// passed into the services that need it; nothing reads the environment
// after startup.
type Config struct {
	Addr              string
	DatabaseURL       string
	DatabaseName      string
	SecretKey         string
	AccessTokenExpiry time.Duration
}

// Load reads configuration from the environment, with an optional .env
// overlay for local development. Tokens are signed with HS256; the
// algorithm is fixed and not configurable.
func Load() *Config {
	// Missing .env is fine, the real environment still applies.
	_ = godotenv.Load()

	return &Config{
		Addr:              GetEnvAsString("ADDR", ":8080"),
		DatabaseURL:       GetEnvAsString("DATABASE_URL", "mongodb://localhost:27017"),
		DatabaseName:      GetEnvAsString("DATABASE_NAME", "dataset_api"),
		SecretKey:         GetEnvAsString("SECRET_KEY", ""),
		AccessTokenExpiry: GetEnvAsDuration("ACCESS_TOKEN_EXPIRY", 1800*time.Second),
	}
}
