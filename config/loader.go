package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// SourceEmbedded is reported when no file on the search path was found.
const SourceEmbedded = "embedded"

// LocalPath is the working-directory override checked after the user config.
var LocalPath = filepath.Join("configs", "diamondfall.yaml")

// Load resolves the configuration.
// Search order: customPath -> user config dir -> ./configs/diamondfall.yaml -> embedded default.
// It returns the path the values came from.
func Load(customPath string) (Config, string, error) {
	cfg, err := Parse(defaultYAML, Default())
	if err != nil {
		return Config{}, "", fmt.Errorf("config: embedded default: %w", err)
	}

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err = Parse(data, cfg)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, customPath, cfg.Validate()
	}

	for _, path := range []string{UserPath(), LocalPath} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return Config{}, "", fmt.Errorf("config: read %s: %w", path, err)
		}
		cfg, err = Parse(data, cfg)
		if err != nil {
			return Config{}, "", fmt.Errorf("config: parse %s: %w", path, err)
		}
		return cfg, path, cfg.Validate()
	}

	return cfg, SourceEmbedded, cfg.Validate()
}

// Parse decodes data over base.
func Parse(data []byte, base Config) (Config, error) {
	cfg := base
	cfg.Platforms = append([]PlatformConfig(nil), base.Platforms...)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// UserPath returns the per-user config file, or "" when no config dir exists.
func UserPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return ""
	}
	return filepath.Join(dir, "diamondfall", "config.yaml")
}
