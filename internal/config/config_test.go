package config

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"mdnotes/internal/storage"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaults(t *testing.T) {
	cfg := FromLookup(env(nil))

	assert.Equal(t, "7521", cfg.Port)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, storage.BackendFile, cfg.Storage.Backend)
	assert.Equal(t, "data", cfg.Storage.Path)
	assert.Equal(t, "markdown-notes", cfg.Storage.MongoDatabase)
}

func TestOverrides(t *testing.T) {
	cfg := FromLookup(env(map[string]string{
		"PORT":          "8080",
		"NOTES_STORAGE": "sqlite",
		"NOTES_PATH":    "/var/lib/notes",
		"LOG_LEVEL":     "DEBUG",
		"MONGODB_URI":   "mongodb://db:27017",
	}))

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, storage.BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, filepath.Join("/var/lib/notes", "notes.db"), cfg.Storage.Path)
	assert.Equal(t, "mongodb://db:27017", cfg.Storage.MongoURI)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}
