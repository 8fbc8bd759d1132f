package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const defaultBaseURL = "http://localhost:5000"

type Config struct {
	BaseURL        string `yaml:"baseUrl"`
	TimeoutSeconds int    `yaml:"timeoutSeconds"`
}

// LoadConfig reads harness.yml from dir. A missing file is fine, the
// defaults apply then.
func LoadConfig(dir string) (Config, error) {
	cfg := Config{BaseURL: defaultBaseURL}
	data, err := os.ReadFile(filepath.Join(dir, "harness.yml"))
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("harness.yml not found in %s, using defaults", dir)
			return cfg, nil
		}
		return cfg, err
	}
	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return cfg, fmt.Errorf("failed to parse harness.yml: %w", err)
	}
	if fileCfg.BaseURL != "" {
		cfg.BaseURL = fileCfg.BaseURL
	}
	if fileCfg.TimeoutSeconds > 0 {
		cfg.TimeoutSeconds = fileCfg.TimeoutSeconds
	}
	return cfg, nil
}

// ProbeTimeout returns the configured timeout, or the caller's default
// when harness.yml did not set one.
func (c Config) ProbeTimeout(fallback time.Duration) time.Duration {
	if c.TimeoutSeconds > 0 {
		return time.Duration(c.TimeoutSeconds) * time.Second
	}
	return fallback
}
