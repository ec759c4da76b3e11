package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

// Config holds all runtime settings, read from the environment once at
// startup and treated as immutable afterwards.
type Config struct {
	MongoURI string
	MongoDB  string

	JWTSecret   string
	JWTIssuer   string
	JWTAudience string
	TokenTTL    time.Duration

	ServerPort string

	RateLimitRequests int
	RateLimitBurst    int
}

// Load reads the configuration from environment variables. It returns an
// error naming every required variable that is missing.
func Load() (*Config, error) {
	cfg := &Config{}

	var missing []string

	cfg.MongoURI = os.Getenv("MONGO_URI")
	if cfg.MongoURI == "" {
		missing = append(missing, "MONGO_URI")
	}

	cfg.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.JWTSecret == "" {
		missing = append(missing, "JWT_SECRET")
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("required environment variables are not set: %v", missing)
	}

	cfg.MongoDB = getEnvString("MONGO_DB", "TaskManagerDB")
	cfg.JWTIssuer = getEnvString("JWT_ISSUER", "task-manager")
	cfg.JWTAudience = getEnvString("JWT_AUDIENCE", "task-manager-api")
	cfg.TokenTTL = getEnvDuration("TOKEN_TTL", time.Hour)
	cfg.ServerPort = getEnvString("SERVER_PORT", "8080")
	cfg.RateLimitRequests = getEnvInt("RATE_LIMIT_REQUESTS", 5000)
	cfg.RateLimitBurst = getEnvInt("RATE_LIMIT_BURST", 1000)

	return cfg, nil
}

func getEnvString(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Printf("invalid %s=%q, using default %d", key, v, defaultVal)
			return defaultVal
		}
		return i
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			log.Printf("invalid %s=%q, using default %s", key, v, defaultVal)
			return defaultVal
		}
		return d
	}
	return defaultVal
}
