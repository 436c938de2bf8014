package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/levelifeofficial/levelife-922003/internal/storage"
)

// Config is the process configuration read from the environment.
type Config struct {
	// DBPath is empty unless set; ResolveDBPath falls back to the default.
	DBPath    string `env:"LEVELIFE_DB_PATH"`
	LogLevel  string `env:"LEVELIFE_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"LEVELIFE_LOG_FORMAT" envDefault:"text"`
}

// Load parses the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	cfg.LogFormat = strings.ToLower(strings.TrimSpace(cfg.LogFormat))
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return Config{}, fmt.Errorf("LEVELIFE_LOG_FORMAT: unknown format %q", cfg.LogFormat)
	}
	return cfg, nil
}

// ResolveDBPath picks the database path: flag, then environment, then
// ~/.levelife.db.
func (c Config) ResolveDBPath(flag string) (string, error) {
	if p := strings.TrimSpace(flag); p != "" {
		return p, nil
	}
	if p := strings.TrimSpace(c.DBPath); p != "" {
		return p, nil
	}
	return storage.DefaultDBPath()
}
