package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Config is the persistent application configuration
type Config struct {
	API APIConfig `json:"api"`
	UI  UIConfig  `json:"ui"`

	// DBPath overrides the default database location when non-empty.
	DBPath string `json:"db_path,omitempty"`
}

// APIConfig holds REST Countries client settings
type APIConfig struct {
	BaseURL            string `json:"base_url"`
	TimeoutSeconds     int    `json:"timeout_seconds"`
	StaleMinutes       int    `json:"stale_minutes"`        // dataset queries
	SearchStaleMinutes int    `json:"search_stale_minutes"` // remote name search
}

// UIConfig holds UI preferences
type UIConfig struct {
	Theme        string `json:"theme"`
	MaxSelection int    `json:"max_selection"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:            "https://restcountries.com/v3.1",
			TimeoutSeconds:     30,
			StaleMinutes:       60,
			SearchStaleMinutes: 5,
		},
		UI: UIConfig{
			Theme:        "dark",
			MaxSelection: 3,
		},
	}
}

// Timeout returns the HTTP client timeout.
func (c *Config) Timeout() time.Duration {
	if c.API.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// Stale returns the staleness window for dataset queries.
func (c *Config) Stale() time.Duration {
	if c.API.StaleMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(c.API.StaleMinutes) * time.Minute
}

// SearchStale returns the staleness window for remote name search.
func (c *Config) SearchStale() time.Duration {
	if c.API.SearchStaleMinutes <= 0 {
		return 5 * time.Minute
	}
	return time.Duration(c.API.SearchStaleMinutes) * time.Minute
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".atlascope", "config.json")
}

// DataDir returns the directory holding the database and logs.
func DataDir() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".atlascope")
}

// Load reads config from disk, or returns defaults
func Load() (*Config, error) {
	return loadFrom(ConfigPath())
}

func loadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		// A corrupt config should not brick the app
		return DefaultConfig(), nil
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// applyDefaults fills zero values so a hand-edited partial config still works.
func applyDefaults(cfg *Config) {
	def := DefaultConfig()
	if cfg.API.BaseURL == "" {
		cfg.API.BaseURL = def.API.BaseURL
	}
	if cfg.API.TimeoutSeconds == 0 {
		cfg.API.TimeoutSeconds = def.API.TimeoutSeconds
	}
	if cfg.API.StaleMinutes == 0 {
		cfg.API.StaleMinutes = def.API.StaleMinutes
	}
	if cfg.API.SearchStaleMinutes == 0 {
		cfg.API.SearchStaleMinutes = def.API.SearchStaleMinutes
	}
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = def.UI.Theme
	}
	if cfg.UI.MaxSelection == 0 {
		cfg.UI.MaxSelection = def.UI.MaxSelection
	}
}

// Save writes config to disk
func (c *Config) Save() error {
	return c.saveTo(ConfigPath())
}

func (c *Config) saveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
