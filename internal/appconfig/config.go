package appconfig

import (
	"os"
	"path/filepath"

	"pkt.systems/askdoc/schema"
)

// Config is the top-level application configuration.
type Config struct {
	ConfigVersion int           `mapstructure:"config_version" yaml:"config_version"`
	Server        ServerConfig  `mapstructure:"server" yaml:"server"`
	Session       SessionConfig `mapstructure:"session" yaml:"session"`
	Service       ServiceConfig `mapstructure:"service" yaml:"service"`
}

// CurrentConfigVersion marks the supported config version.
const CurrentConfigVersion = 1

// ServerConfig points at the document backend.
type ServerConfig struct {
	BaseURL               string `mapstructure:"base_url" yaml:"base_url"`
	RequestTimeoutSeconds int    `mapstructure:"request_timeout_seconds" yaml:"request_timeout_seconds"`
}

// SessionConfig identifies the conversation session.
type SessionConfig struct {
	ID string `mapstructure:"id" yaml:"id"`
}

// ServiceConfig controls core service behavior.
type ServiceConfig struct {
	HistoryMax int `mapstructure:"history_max" yaml:"history_max"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		ConfigVersion: CurrentConfigVersion,
		Server: ServerConfig{
			BaseURL:               "http://localhost:8000",
			RequestTimeoutSeconds: 120,
		},
		Session: SessionConfig{
			ID: "default",
		},
		Service: ServiceConfig{
			HistoryMax: schema.DefaultHistoryMax,
		},
	}
}

// DefaultConfigPath returns the standard config path.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".askdoc", "config.yaml"), nil
}
