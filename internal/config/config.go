// Package config loads the storefront configuration: an optional YAML
// file overlaid with environment variables. The only hard requirement is
// the Gemini API key; its absence is a deploy-time failure surfaced at
// startup, never per request.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Environment variables recognized by Load. GEMINI_API_KEY wins over the
// legacy API_KEY name.
const (
	EnvAPIKey       = "GEMINI_API_KEY"
	EnvAPIKeyLegacy = "API_KEY"
	EnvModel        = "WATERSTONES_MODEL"
	EnvTimeout      = "WATERSTONES_TIMEOUT"
)

const (
	defaultModel   = "gemini-2.5-flash"
	defaultTimeout = 30 * time.Second
	configFileName = ".waterstones.yaml"
)

// Config holds everything the storefront needs at startup.
type Config struct {
	APIKey         string        `yaml:"api_key"`
	Model          string        `yaml:"model"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// Load reads the config file at path (or $HOME/.waterstones.yaml when
// path is empty), applies environment overrides, fills defaults, and
// validates. A missing file is fine; a missing API key is not.
func Load(path string) (Config, error) {
	cfg := Config{}

	if path == "" {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, configFileName)
		}
	}
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		case !os.IsNotExist(err):
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	applyEnv(&cfg)
	applyDefaults(&cfg)

	if cfg.APIKey == "" {
		return Config{}, fmt.Errorf("no Gemini API key configured: set %s (or api_key in %s)", EnvAPIKey, configFileName)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.APIKey = v
	} else if v := os.Getenv(EnvAPIKeyLegacy); v != "" && cfg.APIKey == "" {
		cfg.APIKey = v
	}
	if v := os.Getenv(EnvModel); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv(EnvTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			cfg.RequestTimeout = d
		}
	}
}

func applyDefaults(cfg *Config) {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultTimeout
	}
}
