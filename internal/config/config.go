package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the server settings.
type Config struct {
	Port       string
	LogLevel   logrus.Level
	DBDriver   string
	DBDSN      string
	NATSURL    string
	HandDelay  time.Duration
	TrickDelay time.Duration
	StaticDir  string
}

// Load reads an optional .env file, then the environment, then args.
// Variables already set in the environment win over .env.
func Load(args []string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Config{
		Port:      getEnv("PORT", "8080"),
		DBDriver:  getEnv("DB_DRIVER", "sqlite3"),
		DBDSN:     getEnv("DB_DSN", "./truco.db"),
		NATSURL:   os.Getenv("NATS_URL"),
		StaticDir: os.Getenv("STATIC_DIR"),
	}

	level, err := logrus.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	if cfg.HandDelay, err = getMillis("HAND_DELAY_MS", 3000); err != nil {
		return Config{}, err
	}
	if cfg.TrickDelay, err = getMillis("TRICK_DELAY_MS", 1500); err != nil {
		return Config{}, err
	}

	fset := flag.NewFlagSet("truco-server", flag.ContinueOnError)
	fset.StringVar(&cfg.Port, "port", cfg.Port, "HTTP listen port")
	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return Config{}, fmt.Errorf("invalid port %q", cfg.Port)
	}
	return cfg, nil
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return ":" + c.Port
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getMillis(key string, fallback int) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return time.Duration(fallback) * time.Millisecond, nil
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms < 0 {
		return 0, fmt.Errorf("invalid %s %q", key, raw)
	}
	return time.Duration(ms) * time.Millisecond, nil
}
