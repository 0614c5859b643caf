package global

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigDir is broadside's directory inside the user config dir.
// BROADSIDE_CONFIG_DIR overrides it.
func DefaultConfigDir() string {
	if dir := os.Getenv("BROADSIDE_CONFIG_DIR"); dir != "" {
		return dir
	}

	configDir, _ := os.UserConfigDir()
	return filepath.Join(configDir, "broadside")
}

func DefaultConfigLocation() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

// LoadConfig reads a config file and fills in any blank fields.
// A missing or empty file is an error so the caller can write out defaults.
func LoadConfig(path string) (GlobalConfig, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return GlobalConfig{}, fmt.Errorf("reading config: %w", err)
	}

	if len(contents) == 0 {
		return GlobalConfig{}, fmt.Errorf("config file %s is empty", path)
	}

	config := GlobalConfig{}
	if err := json.Unmarshal(contents, &config); err != nil {
		return GlobalConfig{}, fmt.Errorf("parsing config: %w", err)
	}

	return populateConfig(config), nil
}

func SaveConfig(config GlobalConfig) error {
	return saveConfigTo(DefaultConfigLocation(), config)
}

func marshalConfig(config GlobalConfig) ([]byte, error) {
	return json.MarshalIndent(config, "", "  ")
}

func saveConfigTo(path string, config GlobalConfig) error {
	jsonBytes, err := marshalConfig(config)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	if err := os.WriteFile(path, jsonBytes, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
