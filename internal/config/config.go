package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the process-wide configuration, loaded once at startup and
// passed explicitly to every consumer.
type Config struct {
	Listen    string `yaml:"listen,omitempty"`
	LogLevel  string `yaml:"log_level,omitempty"`
	MaxUpload int64  `yaml:"max_upload_bytes,omitempty"`

	Providers map[string]ProviderConfig `yaml:"providers,omitempty"`
}

// ProviderConfig holds per-provider credentials and overrides.
type ProviderConfig struct {
	APIKey  string `yaml:"api_key,omitempty"`
	BaseURL string `yaml:"base_url,omitempty"`
	Model   string `yaml:"model,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Listen:    ":8090",
		LogLevel:  "info",
		MaxUpload: 32 * 1024 * 1024,
		Providers: map[string]ProviderConfig{},
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "draftforge"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the config file and overlays environment credentials.
// A missing file is not an error: defaults plus environment apply.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	path, err := ConfigPath()
	if err == nil {
		data, readErr := os.ReadFile(path)
		if readErr != nil && !errors.Is(readErr, os.ErrNotExist) {
			return nil, readErr
		}
		if readErr == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, err
			}
		}
	}

	cfg.applyDefaults()
	cfg.ResolveCredentials(os.Getenv)
	return cfg, nil
}

func (c *Config) Save() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	path, err := ConfigPath()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0600)
}

func (c *Config) applyDefaults() {
	if c.Listen == "" {
		c.Listen = ":8090"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.MaxUpload <= 0 {
		c.MaxUpload = 32 * 1024 * 1024
	}
	if c.Providers == nil {
		c.Providers = map[string]ProviderConfig{}
	}
}

// ResolveCredentials fills in the API key for every known provider.
// Resolution order, first non-empty wins:
//  1. DRAFTFORGE_<PROVIDER>_API_KEY
//  2. the provider's conventional variable (OPENAI_API_KEY, ...)
//  3. the config file value
//
// A provider that resolves to an empty key is removed from the
// configured set entirely.
func (c *Config) ResolveCredentials(getenv func(string) string) {
	if c.Providers == nil {
		c.Providers = map[string]ProviderConfig{}
	}
	for _, info := range Providers {
		pc := c.Providers[info.ID]

		key := strings.TrimSpace(getenv("DRAFTFORGE_" + strings.ToUpper(info.ID) + "_API_KEY"))
		if key == "" && info.EnvVar != "" {
			key = strings.TrimSpace(getenv(info.EnvVar))
		}
		if key == "" {
			key = strings.TrimSpace(pc.APIKey)
		}
		if key == "" {
			delete(c.Providers, info.ID)
			continue
		}

		pc.APIKey = key
		if pc.BaseURL == "" {
			pc.BaseURL = info.BaseURL
		}
		if pc.Model == "" {
			pc.Model = info.DefaultModel
		}
		c.Providers[info.ID] = pc
	}
}
