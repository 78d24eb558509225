package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	API      APIConfig    `yaml:"api"`
	Author   AuthorConfig `yaml:"author"`
	Timezone string       `yaml:"timezone"`
	Statuses StatusConfig `yaml:"statuses"`
	DeepL    DeepLConfig  `yaml:"deepl"`
	State    StateConfig  `yaml:"state"`
}

type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type AuthorConfig struct {
	ID   string `yaml:"id"`
	Name string `yaml:"name"`
}

// StatusConfig holds the video-status sentinels gating the library sync:
// rows marked Add are created, rows marked Update are updated. Both are
// configurable because the sheet workflow has used more than one sentinel
// scheme over time.
type StatusConfig struct {
	Add    int `yaml:"add"`
	Update int `yaml:"update"`
}

type DeepLConfig struct {
	BaseURL string `yaml:"base_url"`
	AuthKey string `yaml:"auth_key"`
}

type StateConfig struct {
	Dir string `yaml:"dir"`
}

// Timeout returns the API request timeout as a duration.
func (a APIConfig) Timeout() time.Duration {
	return time.Duration(a.TimeoutSeconds) * time.Second
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. Env vars use the prefix EVERFIT_ and
// underscore-separated paths:
//
//	EVERFIT_API_BASE_URL, EVERFIT_API_TIMEOUT_SECONDS,
//	EVERFIT_AUTHOR_ID, EVERFIT_AUTHOR_NAME, EVERFIT_TIMEZONE,
//	EVERFIT_STATUS_ADD, EVERFIT_STATUS_UPDATE,
//	EVERFIT_DEEPL_BASE_URL, EVERFIT_DEEPL_AUTH_KEY, EVERFIT_STATE_DIR
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("EVERFIT_API_BASE_URL"); v != "" {
		cfg.API.BaseURL = v
	}
	if v := os.Getenv("EVERFIT_API_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.API.TimeoutSeconds = n
		}
	}
	if v := os.Getenv("EVERFIT_AUTHOR_ID"); v != "" {
		cfg.Author.ID = v
	}
	if v := os.Getenv("EVERFIT_AUTHOR_NAME"); v != "" {
		cfg.Author.Name = v
	}
	if v := os.Getenv("EVERFIT_TIMEZONE"); v != "" {
		cfg.Timezone = v
	}
	if v := os.Getenv("EVERFIT_STATUS_ADD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Statuses.Add = n
		}
	}
	if v := os.Getenv("EVERFIT_STATUS_UPDATE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Statuses.Update = n
		}
	}
	if v := os.Getenv("EVERFIT_DEEPL_BASE_URL"); v != "" {
		cfg.DeepL.BaseURL = v
	}
	if v := os.Getenv("EVERFIT_DEEPL_AUTH_KEY"); v != "" {
		cfg.DeepL.AuthKey = v
	}
	if v := os.Getenv("EVERFIT_STATE_DIR"); v != "" {
		cfg.State.Dir = v
	}
}

func applyDefaults(cfg *Config) {
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = "https://api-prod3.everfit.io"
	}
	if cfg.API.TimeoutSeconds == 0 {
		cfg.API.TimeoutSeconds = 30
	}
	if cfg.Timezone == "" {
		cfg.Timezone = "America/Los_Angeles"
	}
	if cfg.Statuses.Add == 0 {
		cfg.Statuses.Add = 1
	}
	if cfg.Statuses.Update == 0 {
		cfg.Statuses.Update = 3
	}
	if cfg.DeepL.BaseURL == "" {
		cfg.DeepL.BaseURL = "https://api-free.deepl.com"
	}
}

func (c *Config) validate() error {
	if c.Author.ID == "" {
		return fmt.Errorf("author.id is required")
	}
	if c.Author.Name == "" {
		return fmt.Errorf("author.name is required")
	}
	return nil
}
