// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort            = "5000"
	defaultUpstreamTimeout = 10 * time.Second
)

// AviationStack holds the upstream provider settings.
// Empty values are accepted; they surface as per-request failures.
type AviationStack struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Config is the full process configuration, read once at startup.
type Config struct {
	Port          string
	LogLevel      slog.Level
	CORSOrigins   []string
	AviationStack AviationStack
}

// Load reads an optional .env file from the working directory, then the
// environment. Variables already set in the environment take precedence.
func Load() (Config, error) {
	return LoadFile(".env")
}

// LoadFile is Load with an explicit dotenv path. A missing file is not an error.
func LoadFile(path string) (Config, error) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading %s: %w", path, err)
	}

	timeout, err := durationEnv("AVIATION_STACK_TIMEOUT", defaultUpstreamTimeout)
	if err != nil {
		return Config{}, err
	}

	level, err := levelEnv("LOG_LEVEL", slog.LevelInfo)
	if err != nil {
		return Config{}, err
	}

	return Config{
		Port:        getEnv("PORT", defaultPort),
		LogLevel:    level,
		CORSOrigins: listEnv("CORS_ALLOWED_ORIGINS", []string{"*"}),
		AviationStack: AviationStack{
			APIKey:  os.Getenv("AVIATION_STACK_API_KEY"),
			BaseURL: os.Getenv("AVIATION_STACK_API_URL"),
			Timeout: timeout,
		},
	}, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, raw)
	}
	return d, nil
}

func levelEnv(key string, fallback slog.Level) (slog.Level, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return 0, fmt.Errorf("parsing %s: %w", key, err)
	}
	return level, nil
}

func listEnv(key string, fallback []string) []string {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
