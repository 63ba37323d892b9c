// Package config loads the application configuration from CLI flags and
// environment variables. Flags win over the environment; a local .env
// file, if present, is loaded into the environment first.
package config

import (
	"errors"
	"flag"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything fixed at process start. There is no runtime
// reconfiguration.
type Config struct {
	Port           int
	DatabaseURL    string
	DatabaseDriver string
	UploadDir      string
	SessionSecret  string
	SessionTTL     time.Duration
	LogLevel       string
	LogFormat      string
}

// Load reads .env (if any) and parses flags and environment variables.
func Load(args []string) (Config, error) {
	// Ignore a missing .env; explicit env vars still apply.
	_ = godotenv.Load()
	return ParseFlags(args)
}

// ParseFlags validates flags with environment fallbacks.
func ParseFlags(args []string) (Config, error) {
	var cfg Config
	var ttlHours int

	fs := flag.NewFlagSet("santinho", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL (file path for sqlite)")
	fs.StringVar(&cfg.DatabaseDriver, "t", "", "Database driver (sqlite or postgres)")
	fs.StringVar(&cfg.UploadDir, "u", "", "Photo upload directory")

	// Secrets prefer env variables, but allow CLI for dev.
	fs.StringVar(&cfg.SessionSecret, "session-secret", "", "Session signing secret (prefer env)")
	fs.IntVar(&ttlHours, "session-ttl", 0, "Session lifetime in hours")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables.
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 8080
		}
	}

	if cfg.DatabaseDriver == "" {
		cfg.DatabaseDriver = os.Getenv("DATABASE_DRIVER")
		if cfg.DatabaseDriver == "" {
			cfg.DatabaseDriver = "sqlite"
		}
	}
	if cfg.DatabaseDriver != "sqlite" && cfg.DatabaseDriver != "postgres" {
		return Config{}, errors.New("database driver must be sqlite or postgres")
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		if cfg.DatabaseDriver == "postgres" {
			return Config{}, errors.New("database URL required for postgres (use -d or DATABASE_URL env)")
		}
		cfg.DatabaseURL = "./data/santinho.db"
	}

	if cfg.UploadDir == "" {
		cfg.UploadDir = os.Getenv("UPLOAD_DIR")
		if cfg.UploadDir == "" {
			cfg.UploadDir = "./data/uploads"
		}
	}

	if cfg.SessionSecret == "" {
		cfg.SessionSecret = os.Getenv("SESSION_SECRET")
	}
	if cfg.SessionSecret == "" {
		return Config{}, errors.New("SESSION_SECRET required")
	}

	if ttlHours == 0 {
		if ttlStr := os.Getenv("SESSION_TTL"); ttlStr != "" {
			h, err := strconv.Atoi(ttlStr)
			if err != nil || h <= 0 {
				return Config{}, errors.New("invalid SESSION_TTL env variable")
			}
			ttlHours = h
		} else {
			ttlHours = 24
		}
	}
	cfg.SessionTTL = time.Duration(ttlHours) * time.Hour

	cfg.LogLevel = os.Getenv("LOG_LEVEL")
	cfg.LogFormat = os.Getenv("LOG_FORMAT")

	return cfg, nil
}
