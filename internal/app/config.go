package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	PlanPath string // hcl or yaml plan files

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
	WorkerCount     int

	// Sequential selects the strictly sequential execution strategy.
	Sequential bool
	// GraphOnly prints the derived graph in DOT format instead of running.
	GraphOnly bool
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.PlanPath == "" {
		return nil, errors.New("PlanPath is a required configuration field and cannot be empty")
	}

	// Future validations for other fields can be added here.

	return &cfg, nil
}
