package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	UpstreamURL  string
	Port         string
	LogLevel     string
	FetchTimeout time.Duration
	CORSOrigins  []string
}

func New() *Config {
	// .env is optional; deployed environments set these directly.
	_ = godotenv.Load()

	return &Config{
		UpstreamURL:  getEnv("UPSTREAM_URL", "http://localhost:9000"),
		Port:         getEnv("PORT", "8080"),
		LogLevel:     os.Getenv("LOGLEVEL"),
		FetchTimeout: getTimeout(os.Getenv("FETCH_TIMEOUT_SECONDS"), 30*time.Second),
		CORSOrigins:  splitOrigins(getEnv("CORS_ORIGINS", "*")),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getTimeout(raw string, fallback time.Duration) time.Duration {
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		return fallback
	}
	return time.Duration(secs) * time.Second
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
