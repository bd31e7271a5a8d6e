package api

import (
	"os"
	"strings"
	"time"
)

// DefaultDvorush is the checklist seeded onto every newly created day when
// YOMAN_DVORUSH is unset.
var DefaultDvorush = []string{
	"Morning walk",
	"Drink water",
	"Read something",
}

// Config holds the server configuration, loaded from environment variables.
type Config struct {
	ListenAddr      string
	DBPath          string
	ShutdownTimeout time.Duration
	LogFormat       string // "json" (default) or "text"
	LogLevel        string // "debug", "info" (default), "warn", "error"

	DvorushTitles []string // checklist seeded onto new days
}

// LoadConfig reads configuration from environment variables with sensible defaults.
func LoadConfig() Config {
	cfg := Config{
		ListenAddr:      ":3001",
		DBPath:          "./data/yoman.db",
		ShutdownTimeout: 30 * time.Second,
		LogFormat:       "json",
		LogLevel:        "info",
		DvorushTitles:   DefaultDvorush,
	}

	if v := os.Getenv("YOMAN_LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := os.Getenv("YOMAN_DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("YOMAN_SHUTDOWN_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.ShutdownTimeout = d
		}
	}
	if v := os.Getenv("YOMAN_LOG_FORMAT"); v != "" {
		cfg.LogFormat = v
	}
	if v := os.Getenv("YOMAN_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("YOMAN_DVORUSH"); v != "" {
		var titles []string
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				titles = append(titles, part)
			}
		}
		cfg.DvorushTitles = titles
	}

	return cfg
}
