package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"DB_PATH", "SERVER_PORT", "LOG_LEVEL", "READ_CONCURRENCY", "MATCHES_LIMIT"} {
		t.Setenv(key, "")
	}

	cfg, err := Load(zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "tracker.db", cfg.DBPath)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 4, cfg.ReadConcurrency)
	assert.Equal(t, 100, cfg.MatchesLimit)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("DB_PATH", "/data/cod.db")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("READ_CONCURRENCY", "8")
	t.Setenv("MATCHES_LIMIT", "25")

	cfg, err := Load(zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, "/data/cod.db", cfg.DBPath)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, 8, cfg.ReadConcurrency)
	assert.Equal(t, 25, cfg.MatchesLimit)
}

func TestLoadRejectsInvalidNumbers(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("READ_CONCURRENCY", "zero")
	_, err := Load(zerolog.Nop())
	assert.Error(t, err)

	t.Setenv("READ_CONCURRENCY", "")
	t.Setenv("MATCHES_LIMIT", "-1")
	_, err = Load(zerolog.Nop())
	assert.Error(t, err)
}
