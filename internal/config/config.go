package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config represents the application configuration
type Config struct {
	DefaultOutput    string `toml:"default_output"`
	AllowMissingName bool   `toml:"allow_missing_name"`
	NoColor          bool   `toml:"no_color"`
}

// Default returns the configuration written on first use
func Default() *Config {
	return &Config{
		DefaultOutput: "cards.json",
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "cardtable", "config.toml")
}

// LoadConfig loads the config file. A missing file yields the defaults
// without creating it.
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return Default(), nil
	}

	config := Default()
	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	if config.DefaultOutput == "" {
		config.DefaultOutput = Default().DefaultOutput
	}

	return config, nil
}

// Init creates a default config file unless one already exists
func Init() (*Config, error) {
	if _, err := os.Stat(GetConfigFilePath()); err == nil {
		return LoadConfig()
	}

	config := Default()
	if err := Save(config); err != nil {
		return nil, err
	}
	return config, nil
}

// Save writes the config file, creating its directory if needed
func Save(config *Config) error {
	configPath := GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}

	return nil
}

// SetDefaultOutput sets the default output path in the config
func SetDefaultOutput(path string) error {
	config, err := LoadConfig()
	if err != nil {
		return err
	}

	config.DefaultOutput = path
	return Save(config)
}
