package app

import "errors"

// Config holds everything an App instance needs to run.
type Config struct {
	ScenarioPath string // hcl file or directory
	SettingsPath string // optional yaml file

	OutputDir string // overrides the settings value when set
	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ScenarioPath == "" {
		return nil, errors.New("ScenarioPath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
