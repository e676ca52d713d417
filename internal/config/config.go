// Package config loads optional CLI defaults from a config.json file in
// the working directory. A missing file yields an empty config; flags
// always win over config values.
package config

import (
	"encoding/json"
	"os"
)

// Config is the config.json structure.
type Config struct {
	// SkinsPath is the default input folder for batch runs.
	SkinsPath string `json:"skins_path"`

	// OutputPath is the default output folder; empty means alongside the
	// input.
	OutputPath string `json:"output_path"`

	// Overwrite replaces existing output files when true.
	Overwrite bool `json:"overwrite"`

	// Workers is the batch worker pool size; 0 means the default.
	Workers int `json:"workers"`
}

// Load reads config.json from the working directory. A missing file is not
// an error.
func Load() (*Config, error) {
	const configPath = "config.json"

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	f, err := os.Open(configPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	if err := json.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
