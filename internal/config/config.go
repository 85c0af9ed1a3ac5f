package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds optional defaults loaded from a YAML file. Command-line
// flags always win over file values.
type Config struct {
	Output     string `yaml:"output"`
	NumThreads int    `yaml:"num_threads"`
	Cookies    string `yaml:"cookies"`
	Progress   *bool  `yaml:"progress"`
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.NumThreads < 0 {
		return Config{}, fmt.Errorf("config %s: num_threads must be >= 1", path)
	}
	return cfg, nil
}
