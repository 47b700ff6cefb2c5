package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays configuration from the process environment. A .env file
// in the working directory is loaded first, without overriding variables
// already present in the environment.
//
// Recognized variables:
//
//	ADDRESS                 HTTP bind address (e.g. ":5000")
//	DATABASE_DSN            PostgreSQL DSN
//	JWT_SECRET              token signing secret
//	TOKEN_VALIDITY          token lifetime (Go duration, e.g. "720h")
//	APP_ENV                 "production" or "development"
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		config.Environment = v
	}
}
