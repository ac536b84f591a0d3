package global

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/nathanieltooley/porycalc/porygon"
)

type GlobalConfig struct {
	TeamSaveLocation string
	// Level used for saved team members that don't have one
	DefaultLevel int
	Debug        bool
}

func DefaultConfigDir() string {
	configDir, _ := os.UserConfigDir()
	return filepath.Join(configDir, "porycalc")
}

func DefaultConfigLocation() string {
	return filepath.Join(DefaultConfigDir(), "config.json")
}

func SaveConfig(config GlobalConfig) error {
	return saveConfigTo(DefaultConfigLocation(), config)
}

func saveConfigTo(configFilepath string, config GlobalConfig) error {
	jsonString, err := json.Marshal(config)
	if err != nil {
		return err
	}

	if err := os.WriteFile(configFilepath, jsonString, 0666); err != nil {
		return err
	}

	return nil
}

// loadConfig reads the config at configFilepath, creating it with defaults if it is missing or empty
func loadConfig(configDir string, configFilepath string) (GlobalConfig, error) {
	configContents, err := os.ReadFile(configFilepath)
	if err != nil && !os.IsNotExist(err) {
		return populateConfig(configDir, GlobalConfig{}), err
	}

	// Non-empty config file
	if len(configContents) > 0 {
		newOpts := GlobalConfig{}
		if err := json.Unmarshal(configContents, &newOpts); err != nil {
			return populateConfig(configDir, GlobalConfig{}), err
		}

		return populateConfig(configDir, newOpts), nil
	}

	config := populateConfig(configDir, GlobalConfig{})
	return config, saveConfigTo(configFilepath, config)
}

func populateConfig(configDir string, config GlobalConfig) GlobalConfig {
	if config.TeamSaveLocation == "" {
		config.TeamSaveLocation = filepath.Join(configDir, "saves/", "teams.json")
	}
	if config.DefaultLevel < porygon.MIN_LEVEL || config.DefaultLevel > porygon.MAX_LEVEL {
		config.DefaultLevel = porygon.MAX_LEVEL
	}

	return config
}
