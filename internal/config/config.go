package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	DBPath    string // path to the embedded database file
	PrefsFile string // path to the theme preference file (outside the DB)
	PerPage   int    // fixed page size for the item view

	SeedFile      string        // optional YAML seed file, empty = disabled
	SweepInterval time.Duration // interval for the orphan blob sweeper
}

func Load() *Config {
	return &Config{
		// Server settings
		ListenPort:      getenv("LINKNEST_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("LINKNEST_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("LINKNEST_LOG_LEVEL", "info"),
		PrettyLog: mustBool("LINKNEST_PRETTY_LOG", true),

		// Storage
		DBPath:    getenv("LINKNEST_DB_PATH", "linknest.db"),
		PrefsFile: getenv("LINKNEST_PREFS_FILE", "linknest_theme"),
		PerPage:   getenvInt("LINKNEST_PER_PAGE", 20),

		// Background work
		SeedFile:      getenv("LINKNEST_SEED_FILE", ""),
		SweepInterval: mustDuration("LINKNEST_SWEEP_INTERVAL", 24*time.Hour),
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
