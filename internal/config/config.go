// Package config handles the persistent UI preferences file.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config is the persistent application configuration.
// The recommendation behavior itself is not configurable; only how much
// of it the session view shows.
type Config struct {
	// MaxResults is how many ranked recommendations the results pane
	// shows.
	MaxResults int `json:"max_results"`

	// MaxAlternatives is how many entries the alternatives pane shows.
	MaxAlternatives int `json:"max_alternatives"`

	// Language hints which phrasing set the help pane displays ("en" or
	// "ru"). Parsing always accepts both.
	Language string `json:"language"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		MaxResults:      5,
		MaxAlternatives: 3,
		Language:        "en",
	}
}

// ConfigPath returns the location of the config file.
func ConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".gamerec-config.json"
	}
	return filepath.Join(homeDir, ".gamerec", "config.json")
}

// Load reads the config file, returning defaults when it is missing or
// unreadable. On first run the defaults are written out so the user has
// a file to edit. A malformed file is not an error; the user just gets
// defaults.
func Load() (*Config, error) {
	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			cfg := DefaultConfig()
			// Failing to materialize the file is not fatal.
			_ = cfg.Save()
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), nil
	}
	cfg.fillDefaults()

	return &cfg, nil
}

// fillDefaults repairs zero values from a partial config file.
func (c *Config) fillDefaults() {
	def := DefaultConfig()
	if c.MaxResults <= 0 {
		c.MaxResults = def.MaxResults
	}
	if c.MaxAlternatives <= 0 {
		c.MaxAlternatives = def.MaxAlternatives
	}
	if c.Language == "" {
		c.Language = def.Language
	}
}

// Save writes the config file, creating the directory if needed.
func (c *Config) Save() error {
	path := ConfigPath()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
