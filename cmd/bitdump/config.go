package main

import (
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
	"sutext.github.io/bithelper/xlog"
)

type config struct {
	LogLevel string `yaml:"logLevel"`
	JSON     bool   `yaml:"json"`
	Backing  string `yaml:"backing"`
	Parallel int    `yaml:"parallel"`
}

func readConfig(path string) (*config, error) {
	cfg := &config{Parallel: 4}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *config) Level() slog.Level {
	return xlog.ParseLevel(c.LogLevel)
}
