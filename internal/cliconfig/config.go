// Package cliconfig persists the tokenpanel CLI settings. Issued tokens
// are never written here; only the session token used to request them is.
package cliconfig

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dmp-tools/tokenpanel/internal/api/validation"
	"github.com/dmp-tools/tokenpanel/internal/expiry"
	"github.com/dmp-tools/tokenpanel/internal/i18n"
	"github.com/dmp-tools/tokenpanel/internal/logging"
)

const (
	dirName  = ".tokenpanel"
	fileName = "config.yaml"
)

// Config represents the CLI configuration
type Config struct {
	BaseURL      string         `yaml:"base_url" validate:"required,httpurl"`
	SessionToken string         `yaml:"session_token,omitempty"`
	Lang         string         `yaml:"lang" validate:"omitempty,lang"`
	Variant      string         `yaml:"variant" validate:"omitempty,variant"`
	Timeout      time.Duration  `yaml:"timeout" validate:"gte=0"`
	Logging      logging.Config `yaml:"logging"`
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	return &Config{
		BaseURL: "http://localhost:8080",
		Lang:    string(i18n.ZH),
		Variant: expiry.Default().Name,
		Timeout: 15 * time.Second,
		Logging: logging.Config{
			Level:      logging.LevelWarn,
			File:       "~/" + dirName + "/logs/tokenpanel.log",
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     7,
		},
	}
}

// DefaultPath returns ~/.tokenpanel/config.yaml
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, dirName, fileName), nil
}

// Load reads the configuration at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, logging.WrapError(err, "failed to read config file "+path)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, logging.WrapError(err, "failed to parse config file "+path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, logging.WrapError(err, path)
	}
	return cfg, nil
}

// Save writes the configuration to path with owner-only permissions
func Save(path string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if err := validation.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %s", logging.ErrInvalidConfig, validation.Summary(err))
	}
	if c.Logging.Level != "" {
		if err := c.Logging.Validate(); err != nil {
			return fmt.Errorf("%w: logging: %v", logging.ErrInvalidConfig, err)
		}
	}
	return nil
}

// LangValue returns the configured language.
func (c *Config) LangValue() i18n.Lang {
	return i18n.ParseLang(c.Lang)
}

// VariantValue returns the configured contract variant.
func (c *Config) VariantValue() (expiry.Variant, error) {
	return expiry.Lookup(c.Variant)
}
