package config

import (
	"os"
	"path/filepath"
)

// EnvConfigDir overrides the default config directory when set.
const EnvConfigDir = "WTHR_CONFIG_DIR"

func GetConfigDir() (string, error) {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return dir, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "wthr"), nil
}

func GetConfigFile(name string) (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, name), nil
}

func GetConfigJSONFile() (string, error) {
	return GetConfigFile("config.json")
}
