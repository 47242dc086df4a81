// Package config reads process configuration from the environment.
package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"mdnotes/internal/storage"
)

type Config struct {
	Port     string
	DataDir  string
	LogLevel slog.Level
	Storage  storage.Options
}

// Load reads the environment, falling back to defaults for anything unset.
func Load() Config {
	return FromLookup(os.Getenv)
}

// FromLookup builds a Config from an env lookup function.
func FromLookup(getenv func(string) string) Config {
	get := func(key, defaultVal string) string {
		if val := getenv(key); val != "" {
			return val
		}
		return defaultVal
	}

	cfg := Config{
		Port:     get("PORT", "7521"),
		DataDir:  get("NOTES_PATH", "data"),
		LogLevel: ParseLevel(get("LOG_LEVEL", "info")),
		Storage: storage.Options{
			Backend:       get("NOTES_STORAGE", storage.BackendFile),
			MongoURI:      get("MONGODB_URI", "mongodb://localhost:27017"),
			MongoDatabase: get("MONGODB_DATABASE", "markdown-notes"),
		},
	}
	cfg.Storage.Path = StoragePath(cfg.Storage.Backend, cfg.DataDir)
	return cfg
}

// StoragePath picks the on-disk location for backend under dataDir.
func StoragePath(backend, dataDir string) string {
	if backend == storage.BackendSQLite {
		return filepath.Join(dataDir, "notes.db")
	}
	return dataDir
}

// ParseLevel maps debug/info/warn/error to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger returns a text logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: c.LogLevel,
	}))
}
