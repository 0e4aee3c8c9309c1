package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
// It controls run behavior, path protection, and the panel theme.
type Config struct {
	Settings struct {
		DryRun  bool     `yaml:"dry_run"` // If true, runs simulate deletions (safe default)
		Debug   bool     `yaml:"debug"`   // Enable debug logging
		Protect []string `yaml:"protect"` // Glob patterns for paths that must never be removed
	} `yaml:"settings"`
	Script struct {
		Default string `yaml:"default"` // Script opened when none is given on the command line
	} `yaml:"script"`
	Theme struct {
		Primary  string `yaml:"primary"`  // Primary color for branding
		Warning  string `yaml:"warning"`  // Dry-run severity color
		Danger   string `yaml:"danger"`   // Real-run severity color
		Help     string `yaml:"help"`     // Help/hint text color
		Emphasis string `yaml:"emphasis"` // Emphasis color for text that should stand out
	} `yaml:"theme"`
}

// New returns the default configuration.
func New() *Config {
	return defaultConfig()
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Settings.DryRun = true
	cfg.Theme.Primary = "#7B61FF"
	cfg.Theme.Warning = "#E5C07B"
	cfg.Theme.Danger = "#E06C75"
	cfg.Theme.Help = "#5A9"
	cfg.Theme.Emphasis = "#73F59F"
	return cfg
}

// LoadConfig loads configuration from the default location
// (~/.config/scour/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "scour", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration.
func LoadConfigFile(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// dry_run keeps its safe default unless the file sets it explicitly
	var raw struct {
		Settings struct {
			DryRun *bool `yaml:"dry_run"`
		} `yaml:"settings"`
	}
	if err := yaml.Unmarshal(data, &raw); err == nil && raw.Settings.DryRun != nil {
		cfg.Settings.DryRun = *raw.Settings.DryRun
	}
	cfg.Settings.Debug = tempCfg.Settings.Debug
	if len(tempCfg.Settings.Protect) > 0 {
		cfg.Settings.Protect = tempCfg.Settings.Protect
	}
	if tempCfg.Script.Default != "" {
		cfg.Script.Default = tempCfg.Script.Default
	}
	if tempCfg.Theme.Primary != "" {
		cfg.Theme.Primary = tempCfg.Theme.Primary
	}
	if tempCfg.Theme.Warning != "" {
		cfg.Theme.Warning = tempCfg.Theme.Warning
	}
	if tempCfg.Theme.Danger != "" {
		cfg.Theme.Danger = tempCfg.Theme.Danger
	}
	if tempCfg.Theme.Help != "" {
		cfg.Theme.Help = tempCfg.Theme.Help
	}
	if tempCfg.Theme.Emphasis != "" {
		cfg.Theme.Emphasis = tempCfg.Theme.Emphasis
	}

	return cfg, nil
}

// Save writes the configuration to the given path in YAML format.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("error marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	return os.WriteFile(path, data, 0644)
}
