package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// WriteDefault serializes the default configuration to path, creating parent
// directories as needed. An existing file is not overwritten.
func WriteDefault(path string) error {
	if path == "" {
		var err error
		path, err = GetConfigFile()
		if err != nil {
			return err
		}
	}

	expandedPath, err := ExpandPath(path)
	if err != nil {
		return err
	}

	if _, err := os.Stat(expandedPath); err == nil {
		return fmt.Errorf("config file already exists: %s", expandedPath)
	}

	raw, err := yaml.Marshal(Default())
	if err != nil {
		return fmt.Errorf("serializing default config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(expandedPath), 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(expandedPath, raw, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Vet checks that the config file at path parses and holds valid values.
func Vet(path string) (*Config, error) {
	cfg, err := NewLoader().Load(path)
	if err != nil {
		return nil, err
	}

	switch cfg.PackageManager {
	case "npm", "pnpm", "yarn":
	default:
		return nil, fmt.Errorf("unsupported packageManager %q (npm, pnpm, yarn)", cfg.PackageManager)
	}

	return cfg, nil
}
