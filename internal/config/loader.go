package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where settings were loaded from.
type Source string

const (
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin" // hard-coded Default
)

// Load reads settings.
// Search order: customPath -> ~/.hexgame/config.yaml -> ./configs/hexgame.yaml -> embedded default
//
// Files are decoded over Default, so a partial file only overrides the keys
// it sets. A custom path that cannot be read or parsed is an error; the
// other locations are skipped when missing or broken. The result is
// validated.
func Load(customPath string) (Settings, Source, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, "", err
		}
		return cfg, Source(customPath), validate(cfg, customPath)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, Source(userCfgPath), validate(cfg, userCfgPath)
		}
	}

	// Try local configs directory
	localPath := filepath.Join("configs", "hexgame.yaml")
	if cfg, err := loadFile(localPath); err == nil {
		return cfg, Source(localPath), validate(cfg, localPath)
	}

	// Use embedded default YAML
	cfg := Default()
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, validate(cfg, string(SourceEmbedded))
}

func loadFile(path string) (Settings, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

func validate(cfg Settings, from string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config %s: %w", from, err)
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hexgame", filename)
}

// Marshal encodes settings as YAML.
func Marshal(cfg Settings) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
