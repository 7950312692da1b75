package config

// applyDefaults applies default values to configuration fields that are not set.
func applyDefaults(cfg *Config) {
	if cfg.Simulation.Year == 0 {
		cfg.Simulation.Year = 2025
	}
	if cfg.Simulation.Runs == 0 {
		cfg.Simulation.Runs = 20
	}

	if cfg.Roster.Size == 0 {
		cfg.Roster.Size = 12
	}
	if cfg.Roster.MinorRatio == 0 {
		cfg.Roster.MinorRatio = 0.3
	}
	if cfg.Roster.QualifyProbability == 0 {
		cfg.Roster.QualifyProbability = 0.5
	}

	if len(cfg.Strategies) == 0 {
		cfg.Strategies = []string{"greedy", "rotation", "backtracking"}
	}

	if cfg.Metrics.Prometheus.Port == 0 {
		cfg.Metrics.Prometheus.Port = 9090
	}
}
