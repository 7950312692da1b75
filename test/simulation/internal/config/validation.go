package config

import (
	"errors"
	"fmt"
)

// validateConfig validates the configuration for logical consistency.
func validateConfig(cfg *Config) error {
	if cfg.Simulation.Year < 1 || cfg.Simulation.Year > 9999 {
		return fmt.Errorf("year out of range: %d", cfg.Simulation.Year)
	}
	if cfg.Simulation.Runs < 1 {
		return errors.New("runs must be positive")
	}

	if cfg.Roster.Size < 1 {
		return errors.New("roster size must be positive")
	}
	if cfg.Roster.MinorRatio < 0 || cfg.Roster.MinorRatio > 1 {
		return fmt.Errorf("minor ratio must be within [0, 1], got %v", cfg.Roster.MinorRatio)
	}
	if cfg.Roster.QualifyProbability <= 0 || cfg.Roster.QualifyProbability > 1 {
		return fmt.Errorf("qualify probability must be within (0, 1], got %v", cfg.Roster.QualifyProbability)
	}

	validStrategies := map[string]bool{
		"greedy":       true,
		"rotation":     true,
		"backtracking": true,
	}
	for _, s := range cfg.Strategies {
		if !validStrategies[s] {
			return fmt.Errorf("invalid strategy: %s (must be one of: greedy, rotation, backtracking)", s)
		}
	}

	if cfg.Metrics.Prometheus.Enabled && (cfg.Metrics.Prometheus.Port < 1 || cfg.Metrics.Prometheus.Port > 65535) {
		return fmt.Errorf("invalid prometheus port: %d", cfg.Metrics.Prometheus.Port)
	}

	return nil
}
