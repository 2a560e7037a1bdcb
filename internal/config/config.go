package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI       string  // empty disables Mongo persistence
	RedisAddr      string  // empty selects the in-memory caches
	HTTPPort       string
	SessionSecret  string
	FreeDailyLimit int64   // quiz completions per client per day
	RateLimitRPS   float64 // per-client request rate
	RateLimitBurst int
}

func Load() *Config {
	// Best effort; absent .env is fine
	_ = godotenv.Load()

	return &Config{
		MongoURI:       os.Getenv("MONGO_URI"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		HTTPPort:       getEnvOrDefault("HTTP_PORT", "8080"),
		SessionSecret:  getEnvOrDefault("SESSION_SECRET", "dev-session-secret"),
		FreeDailyLimit: getEnvInt64("FREE_DAILY_LIMIT", 3),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: int(getEnvInt64("RATE_LIMIT_BURST", 10)),
	}
}

func getEnvInt64(key string, defaultVal int64) int64 {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.ParseInt(val, 10, 64); err == nil {
			return n
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return defaultVal
}
