package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// Server
	Port           int
	Env            string
	RequestTimeout time.Duration

	// CORS
	AllowedOrigins []string

	// Stats document
	StatsSource   string
	FetchTimeout  time.Duration
	DefaultSeason string
	ClubName      string
	ImagesDir     string

	// Render cache (optional)
	RedisURL string
	CacheTTL time.Duration

	// Cache write-behind pool
	WorkerCount   int
	QueueSize     int
	BatchSize     int
	FlushInterval time.Duration
}

// Load loads configuration from environment variables.
// It returns an error if critical configuration is missing.
func Load() (*Config, error) {
	cfg := &Config{
		Port:           getEnvInt("PORT", 8080),
		Env:            getEnv("ENV", "production"),
		RequestTimeout: getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),

		FetchTimeout:  getEnvDuration("FETCH_TIMEOUT", 10*time.Second),
		DefaultSeason: getEnv("DEFAULT_SEASON", ""),
		ClubName:      getEnv("CLUB_NAME", "Tamarindi FC"),
		ImagesDir:     getEnv("IMAGES_DIR", "images"),

		RedisURL: getEnv("REDIS_URL", ""),
		CacheTTL: getEnvDuration("CACHE_TTL", 10*time.Minute),

		WorkerCount:   getEnvInt("WORKER_COUNT", 2),
		QueueSize:     getEnvInt("QUEUE_SIZE", 256),
		BatchSize:     getEnvInt("BATCH_SIZE", 32),
		FlushInterval: getEnvDuration("FLUSH_INTERVAL", 500*time.Millisecond),
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "*")
	for _, o := range strings.Split(origins, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	// Critical configuration - fail if missing
	var err error
	if cfg.StatsSource, err = getEnvRequired("STATS_SOURCE"); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsDevelopment reports whether ENV selects the development logger.
func (c *Config) IsDevelopment() bool {
	return strings.EqualFold(c.Env, "development") || strings.EqualFold(c.Env, "dev")
}

// CacheEnabled reports whether a Redis URL was configured.
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != ""
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvRequired(key string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("missing required environment variable: %s", key)
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
