package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

type Config struct {
	DBPath          string
	ServerPort      string
	LogLevel        string
	ReadConcurrency int
	MatchesLimit    int
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	readConcurrency, err := getEnvInt("READ_CONCURRENCY", 4)
	if err != nil {
		return nil, err
	}
	matchesLimit, err := getEnvInt("MATCHES_LIMIT", 100)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DBPath:          getEnv("DB_PATH", "tracker.db"),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ReadConcurrency: readConcurrency,
		MatchesLimit:    matchesLimit,
	}

	logger.Info().
		Str("db_path", cfg.DBPath).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Int("read_concurrency", cfg.ReadConcurrency).
		Int("matches_limit", cfg.MatchesLimit).
		Msg("configuration loaded")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", key, v)
	}
	return n, nil
}

var Module = fx.Provide(Load)
