package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration structure.
type Config struct {
	Simulation SimulationConfig `yaml:"simulation"`
	Roster     RosterConfig     `yaml:"roster"`
	Strategies []string         `yaml:"strategies"` // "greedy", "rotation", "backtracking"
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// SimulationConfig configures what is scheduled.
type SimulationConfig struct {
	Year int    `yaml:"year"` // e.g., 2025
	Runs int    `yaml:"runs"` // independent rosters per strategy
	Seed uint64 `yaml:"seed"` // 0 = random
}

// RosterConfig shapes the generated volunteer rosters.
type RosterConfig struct {
	Size               int     `yaml:"size"`                // volunteers per roster (e.g., 12)
	MinorRatio         float64 `yaml:"minor_ratio"`         // share of volunteers under 18 (e.g., 0.3)
	QualifyProbability float64 `yaml:"qualify_probability"` // chance a volunteer holds each role (e.g., 0.5)
}

// MetricsConfig configures metrics collection.
type MetricsConfig struct {
	Prometheus PrometheusConfig `yaml:"prometheus"`
}

// PrometheusConfig configures Prometheus metrics.
type PrometheusConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"` // 9090
}

// LoadConfig loads configuration from a YAML file.
//
// An empty path yields the defaults.
//
// Parameters:
//   - path: Path to the YAML configuration file
//
// Returns:
//   - *Config: Loaded configuration with defaults applied
//   - error: Error if file cannot be read, parsed or validated
func LoadConfig(path string) (*Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
