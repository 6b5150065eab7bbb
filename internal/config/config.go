// Package config loads server configuration from YAML with environment
// variable overrides.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the sphgrid server configuration.
type Config struct {
	Port               string   `yaml:"port"`
	GMTBin             string   `yaml:"gmt_bin"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
}

// Default returns the configuration used when no file or overrides exist.
func Default() Config {
	return Config{
		Port: "8080",
	}
}

// Load reads a YAML config file and applies environment overrides. An empty
// path skips the file and yields defaults plus environment.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // G304: Config path comes from the operator.
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file: %w", err)
		}
		if cfg.Port == "" {
			cfg.Port = Default().Port
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv lets the environment override file values.
func (c *Config) applyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		c.Port = v
	}
	if v := os.Getenv("GMT_BIN"); v != "" {
		c.GMTBin = v
	}
	if v := os.Getenv("CORS_ALLOWED_ORIGINS"); v != "" {
		c.CORSAllowedOrigins = strings.Split(v, ",")
	}
}
