package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

var (
	configDir  = filepath.Join(os.Getenv("HOME"), ".rustop")
	configPath = filepath.Join(configDir, "config.json")
)

// Load reads persisted defaults from ~/.rustop/config.json. A missing or
// malformed file is replaced with defaults rather than treated as an error,
// so a first run always succeeds.
func Load() (*File, error) {
	os.MkdirAll(configDir, 0755)

	data, err := os.ReadFile(configPath)
	if err != nil {
		cfg := Default()
		_ = Save(cfg)
		return cfg, nil
	}

	var cfg File
	if err := json.Unmarshal(data, &cfg); err != nil {
		cfg := Default()
		_ = Save(cfg)
		return cfg, nil
	}

	return &cfg, nil
}

func Save(cfg *File) error {
	data, _ := json.MarshalIndent(cfg, "", "  ")
	return os.WriteFile(configPath, data, 0644)
}

func Default() *File {
	return &File{
		SortBy:       "cpu",
		RefreshRate:  1.0,
		CPUThreshold: 80,
		MemThreshold: 80,
		Webhooks:     map[string]string{},
	}
}

// Path returns the config file location, for the daemon's change watcher.
func Path() string {
	return configPath
}
