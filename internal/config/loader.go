package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables that override file configuration.
const (
	EnvLevelsDir  = "DUNGEON_LEVELS_DIR"
	EnvLevelCount = "DUNGEON_LEVEL_COUNT"
)

const configFileName = "dungeon.yaml"

// LoadDungeon loads the dungeon configuration.
// Search order: customPath -> ~/.dungeon/configs/dungeon.yaml -> ./configs/dungeon.yaml -> embedded default.
// Missing keys keep their default values. Environment overrides are applied last.
func LoadDungeon(customPath string) (DungeonConfig, error) {
	cfg, err := loadFile(customPath)
	if err != nil {
		return cfg, err
	}

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadFile walks the search order and decodes the first readable file.
func loadFile(customPath string) (DungeonConfig, error) {
	cfg := DefaultDungeonConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(configFileName); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultDungeonConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", configFileName)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultDungeonConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultDungeonYAML, &cfg); err != nil {
		return DefaultDungeonConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// applyEnv overrides configuration from environment variables.
func applyEnv(cfg *DungeonConfig) error {
	if dir := os.Getenv(EnvLevelsDir); dir != "" {
		cfg.Levels.Dir = dir
	}
	if raw := os.Getenv(EnvLevelCount); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvLevelCount, raw, err)
		}
		cfg.Levels.Count = n
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".dungeon", "configs", filename)
}
