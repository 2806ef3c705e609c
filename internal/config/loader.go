package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "t2048.yaml"

// Load loads the game rules.
// Search order: customPath -> ~/.t2048/config.yaml -> ./configs/t2048.yaml -> embedded default
// Missing keys keep their default values.
func Load(customPath string) (GameConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Default(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		return parse(data, customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data, userCfgPath); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", fileName)
	if data, err := os.ReadFile(localPath); err == nil {
		if cfg, err := parse(data, localPath); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultYAML, "embedded default")
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML on top of the defaults and validates the result.
func parse(data []byte, source string) (GameConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: failed to parse %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%w (in %s)", err, source)
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".t2048", "config.yaml")
}
