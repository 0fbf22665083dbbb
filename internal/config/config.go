package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config holds the file locations the tracker works with
type Config struct {
	// Path of the markdown checklist file (the canonical state)
	ChecklistPath string
	// Path of the SQLite working store
	DatabasePath string
	// Optional YAML program definition; empty means the built-in program
	ProgramPath string
}

// Default returns the default configuration
func Default() *Config {
	return &Config{
		ChecklistPath: "PROGRESS.md",
		DatabasePath:  "data/algotrack.db",
	}
}

// Load builds the configuration from a .env file (if present) and
// environment variables, on top of the defaults
func Load() *Config {
	// Missing .env is fine, env vars may still be set
	_ = godotenv.Load()

	cfg := Default()
	if v := os.Getenv("ALGOTRACK_CHECKLIST"); v != "" {
		cfg.ChecklistPath = v
	}
	if v := os.Getenv("ALGOTRACK_DB"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("ALGOTRACK_PROGRAM"); v != "" {
		cfg.ProgramPath = v
	}
	return cfg
}
