package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Initialize writes the default configuration into dir, leaving an existing
// configuration file untouched, then loads it.
func Initialize(dir string, logger *log.Logger) (*Configuration, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}

	configPath := filepath.Join(dir, ConfigurationName)
	_, err := os.Stat(configPath)
	switch {
	case err == nil:
		logger.Printf("Configuration already exists at %q, skipping.\n", configPath)
	case errors.Is(err, fs.ErrNotExist):
		logger.Printf("Writing default configuration to %q\n", configPath)
		if err := os.WriteFile(configPath, defaultConfigData, 0600); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return Load(dir)
}
