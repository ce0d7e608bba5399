// Package config assembles runtime settings for the client: defaults,
// then an optional ~/.terracotta/config.yaml, then environment variables
// (a .env file is honored the same way the backend's tooling does it).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultAPIBaseURL = "http://localhost:8000"
	defaultTimeout    = 10 * time.Second

	configFileName = "config.yaml"
)

type Config struct {
	// APIBaseURL is the root of the restaurant backend, e.g. the host
	// serving /api/menu and /api/checkout.
	APIBaseURL string `yaml:"api_base_url"`
	// DataDir holds local state such as the persisted cart.
	DataDir string `yaml:"data_dir"`
	// Timeout bounds every request to the backend.
	Timeout time.Duration `yaml:"timeout"`
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Last resort: keep state next to the binary's working directory.
		return ".terracotta"
	}
	return filepath.Join(home, ".terracotta")
}

// Load builds the effective configuration. A missing config file or .env is
// not an error; a present-but-broken config file is.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL: defaultAPIBaseURL,
		DataDir:    getenv("TERRACOTTA_DATA_DIR", defaultDataDir()),
		Timeout:    defaultTimeout,
	}

	if err := cfg.applyFile(filepath.Join(cfg.DataDir, configFileName)); err != nil {
		return nil, err
	}

	cfg.APIBaseURL = getenv("TERRACOTTA_API_URL", cfg.APIBaseURL)
	cfg.DataDir = getenv("TERRACOTTA_DATA_DIR", cfg.DataDir)
	if v := os.Getenv("TERRACOTTA_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("TERRACOTTA_TIMEOUT: %w", err)
		}
		cfg.Timeout = d
	}

	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	var f Config
	if err := yaml.Unmarshal(b, &f); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if f.APIBaseURL != "" {
		c.APIBaseURL = f.APIBaseURL
	}
	if f.DataDir != "" {
		c.DataDir = f.DataDir
	}
	if f.Timeout > 0 {
		c.Timeout = f.Timeout
	}
	return nil
}
