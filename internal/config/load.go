package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultConfigFilename is the default topology document filename.
const DefaultConfigFilename = "cluster.yaml"

// Validate reads the topology document at path and validates it.
func Validate(path string) (RawConfig, error) {
	// #nosec G304
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return ValidateBytes(path, data)
}

// FindConfigFile searches for the topology document in the current
// directory, then walks up the directory tree.
func FindConfigFile() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current directory: %w", err)
	}
	return findConfigFileFrom(cwd)
}

func findConfigFileFrom(dir string) (string, error) {
	for {
		path := filepath.Join(dir, DefaultConfigFilename)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("config file %s not found", DefaultConfigFilename)
}
