package config_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-wilds/internal/config"
	"github.com/KirkDiggler/rpg-wilds/internal/errors"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, uint64(0), cfg.Seed)
	assert.Equal(t, config.BackendSQLite, cfg.SaveBackend)
	assert.Equal(t, "wilds.db", cfg.SQLitePath)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
	assert.Empty(t, cfg.ContentDir)
	assert.Empty(t, cfg.LogFile)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{
		"WILDS_SEED":         "1234",
		"WILDS_CONTENT_DIR":  "/srv/wilds",
		"WILDS_SAVE_BACKEND": " Redis ",
		"WILDS_REDIS_ADDR":   "cache:6380",
		"WILDS_LOG_LEVEL":    "DEBUG",
		"WILDS_LOG_FILE":     "/tmp/wilds.log",
		"WILDS_PLAYER_NAME":  "Rook",
	})
	require.NoError(t, err)

	assert.Equal(t, uint64(1234), cfg.Seed)
	assert.Equal(t, "/srv/wilds", cfg.ContentDir)
	assert.Equal(t, config.BackendRedis, cfg.SaveBackend)
	assert.Equal(t, "cache:6380", cfg.RedisAddr)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, "Rook", cfg.PlayerName)
	assert.Equal(t, "/tmp/wilds.log", cfg.LogFile)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		vars     map[string]string
		contains string
	}{
		{name: "bad seed", vars: map[string]string{"WILDS_SEED": "many"}, contains: "parse environment"},
		{name: "bad backend", vars: map[string]string{"WILDS_SAVE_BACKEND": "floppy"}, contains: "SaveBackend"},
		{name: "bad level", vars: map[string]string{"WILDS_LOG_LEVEL": "loud"}, contains: "LogLevel"},
		{name: "empty sqlite path", vars: map[string]string{"WILDS_SQLITE_PATH": " "}, contains: "SQLitePath"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadFrom(tt.vars)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestMemoryBackendNeedsNoPaths(t *testing.T) {
	cfg := &config.Config{SaveBackend: config.BackendMemory, LogLevel: "info"}
	require.NoError(t, cfg.Validate())
}
