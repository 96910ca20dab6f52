package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the environment-provided settings for the site.
type Config struct {
	BackendURL    string
	Port          string
	RedisAddr     string
	SessionCookie string
	SessionTTL    time.Duration
	RoleCacheTTL  time.Duration
}

// Load reads .env (when present) and the process environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	return &Config{
		BackendURL:    getEnv("BACKEND_URL", "http://localhost:1337"),
		Port:          getEnv("PORT", "8000"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		SessionCookie: getEnv("SESSION_COOKIE", "salon_session"),
		SessionTTL:    time.Duration(getEnvInt("SESSION_TTL_HOURS", 24)) * time.Hour,
		RoleCacheTTL:  time.Duration(getEnvInt("ROLE_CACHE_TTL_MINUTES", 15)) * time.Minute,
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		log.Printf("Invalid value for %s: %q, using default %d", key, val, fallback)
		return fallback
	}
	return n
}
