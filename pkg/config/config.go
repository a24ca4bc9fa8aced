package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Remote register
	CredentialsFile string `yaml:"credentials_file"`
	SpreadsheetID   string `yaml:"spreadsheet_id"`
	SheetName       string `yaml:"sheet_name"`
	DriveFolderID   string `yaml:"drive_folder_id"`

	// Data entry defaults
	LeaseManager string `yaml:"lease_manager"`

	// Reminders
	DefaultWindow string `yaml:"default_window"`

	// Watch mode
	RefreshIntervalMinutes int `yaml:"refresh_interval_minutes"`

	// UI Settings
	ColorTheme string `yaml:"color_theme"`
	TableWidth int    `yaml:"table_width"`
}

// DefaultConfig returns a Config struct with default values
func DefaultConfig() *Config {
	return &Config{
		CredentialsFile:        "",
		SpreadsheetID:          "",
		SheetName:              "Register",
		DriveFolderID:          "",
		LeaseManager:           "",
		DefaultWindow:          "30",
		RefreshIntervalMinutes: 60,
		ColorTheme:             "auto",
		TableWidth:             0,
	}
}

// DefaultPath returns the standard config file location
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(home, ".config", "assetra", "config.yaml")
}

// Load reads configuration from the specified file path
func Load(path string) (*Config, error) {
	// Start with default config
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, return default config (not an error)
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply defaults for essential values if missing
	if cfg.SheetName == "" {
		cfg.SheetName = "Register"
	}
	if cfg.DefaultWindow == "" {
		cfg.DefaultWindow = "30"
	}
	if cfg.RefreshIntervalMinutes <= 0 {
		cfg.RefreshIntervalMinutes = 60
	}
	if cfg.ColorTheme == "" {
		cfg.ColorTheme = "auto"
	}

	cfg.CredentialsFile = expandHome(cfg.CredentialsFile)

	return cfg, nil
}

// Save persists the current configuration to the specified file path
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ValidateRemote checks that the fields needed to reach the register are set.
func (c *Config) ValidateRemote() error {
	if c.CredentialsFile == "" {
		return fmt.Errorf("credentials_file is not set")
	}
	if c.SpreadsheetID == "" {
		return fmt.Errorf("spreadsheet_id is not set")
	}
	if c.DriveFolderID == "" {
		return fmt.Errorf("drive_folder_id is not set")
	}
	return nil
}

// expandHome replaces a leading ~ with the user's home directory
func expandHome(path string) string {
	if len(path) < 2 || path[0] != '~' || path[1] != '/' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
