package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const defaultBaseURL = "https://api.edusign.fr"

type Config struct {
	BaseURL  string `yaml:"base_url"`
	Language string `yaml:"language"`
	StateDir string `yaml:"state_dir"`
	LogLevel string `yaml:"log_level"`

	// Derived from StateDir, not read from the file.
	DBPath  string `yaml:"-"`
	LogPath string `yaml:"-"`
}

// Load builds the effective configuration: defaults, then the optional YAML
// file at <stateDir>/config.yaml, then .env / environment variables.
// An empty stateDir falls back to ~/.planview.
func Load(stateDir string) (Config, error) {
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		stateDir = filepath.Join(home, ".planview")
	}

	cfg := Config{
		BaseURL:  defaultBaseURL,
		Language: "fr",
		StateDir: stateDir,
		LogLevel: "info",
	}

	payload, err := os.ReadFile(filepath.Join(stateDir, "config.yaml"))
	if err == nil {
		if err := yaml.Unmarshal(payload, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config.yaml: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config.yaml: %w", err)
	}
	cfg.StateDir = stateDir

	// .env is optional; real environment variables win over it.
	_ = godotenv.Load(filepath.Join(stateDir, ".env"))
	if v := os.Getenv("PLANVIEW_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("PLANVIEW_LANGUAGE"); v != "" {
		cfg.Language = v
	}
	if v := os.Getenv("PLANVIEW_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if cfg.BaseURL == "" {
		return Config{}, fmt.Errorf("base url is required")
	}
	cfg.DBPath = filepath.Join(cfg.StateDir, "planview.db")
	cfg.LogPath = filepath.Join(cfg.StateDir, "planview.log")
	return cfg, nil
}
