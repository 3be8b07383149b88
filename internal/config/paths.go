package config

import (
	"os"
	"path/filepath"
	"strings"
)

// Paths contains standard filesystem paths for fitsmeta.
type Paths struct {
	// ConfigFile is the path to the config file (~/.fitsmeta/config.yaml).
	ConfigFile string

	// HomeDir is the fitsmeta home directory (~/.fitsmeta).
	HomeDir string
}

// DefaultPaths returns the default paths for fitsmeta.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	fitsmetaHome := filepath.Join(homeDir, ".fitsmeta")

	return &Paths{
		ConfigFile: filepath.Join(fitsmetaHome, "config.yaml"),
		HomeDir:    fitsmetaHome,
	}, nil
}

// GetConfigFile returns the config file path.
// If FITSMETA_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv("FITSMETA_CONFIG"); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		if path == "~" {
			return homeDir, nil
		}
		return filepath.Join(homeDir, path[2:]), nil
	}
	return path, nil
}
