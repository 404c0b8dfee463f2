package data

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xhd2015/wthr/internal/config"
	"github.com/xhd2015/wthr/models"
)

// LoadConfig returns nil, nil when no config file exists yet.
func LoadConfig() (*models.Config, error) {
	configFile, err := config.GetConfigJSONFile()
	if err != nil {
		return nil, err
	}

	configData, err := os.ReadFile(configFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	if len(configData) == 0 {
		return nil, nil
	}

	var conf models.Config
	err = json.Unmarshal(configData, &conf)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", configFile, err)
	}

	return &conf, nil
}

func SaveConfig(conf *models.Config) error {
	configFile, err := config.GetConfigJSONFile()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(configFile), 0755)
	if err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(conf, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(configFile, data, 0644)
}
