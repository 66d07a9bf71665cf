package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// SameDayPolicy selects how same-day availability is trimmed.
// "lead_time" drops slots starting within SameDayLeadMinutes of now,
// "evening_cutoff" keeps only slots at or after SameDayCutoffHour.
type SameDayPolicy string

const (
	PolicyLeadTime      SameDayPolicy = "lead_time"
	PolicyEveningCutoff SameDayPolicy = "evening_cutoff"
)

type Config struct {
	ServerPort string

	BackendURL     string
	BackendTimeout time.Duration

	SalonTimezone string

	CacheSize int
	CacheTTL  time.Duration

	SameDayPolicy      SameDayPolicy
	SameDayLeadMinutes int
	SameDayCutoffHour  int

	LogLevel string
}

func Load() *Config {
	// Missing .env is fine, env vars may come from the environment.
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		BackendURL:     getEnv("SALON_BACKEND_URL", "http://localhost:9090"),
		BackendTimeout: getDuration("SALON_BACKEND_TIMEOUT", 15*time.Second),

		SalonTimezone: getEnv("SALON_TIMEZONE", "Europe/Paris"),

		CacheSize: getInt("CACHE_SIZE", 64),
		CacheTTL:  getDuration("CACHE_TTL", 30*time.Second),

		SameDayPolicy:      SameDayPolicy(getEnv("SAME_DAY_POLICY", string(PolicyLeadTime))),
		SameDayLeadMinutes: getInt("SAME_DAY_MIN_LEAD_MINUTES", 120),
		SameDayCutoffHour:  getInt("SAME_DAY_CUTOFF_HOUR", 17),

		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
