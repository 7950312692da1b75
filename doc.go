// Package rota assigns volunteers to rotating duty roles for the recurring
// meetings of a month.
//
// A Planner owns one month at a time. Selecting a month derives its meeting
// dates, reads the profile source and builds a default Assignment Map where
// every filled slot respects three rules: the volunteer is qualified for the
// role, nobody holds two roles on the same date, and two minors are never
// paired on the Audio/Video roles. Manual overrides then patch single slots
// without re-validation.
//
// # Quick Start
//
//	import (
//	    "github.com/arloliu/rota"
//	    "github.com/arloliu/rota/source"
//	    "github.com/arloliu/rota/strategy"
//	)
//
//	cfg := rota.DefaultConfig()
//	planner, err := rota.NewPlanner(&cfg, source.NewStatic(profiles), strategy.NewGreedyRandom())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := planner.SelectMonth(ctx, "2024-06"); err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(planner.AssignedName("2024-06-06", rota.RoleAudio))
//
// # Key Features
//
//   - Calendar: meeting dates for any month and weekday set (calendar package)
//   - Eligibility: qualification, same-day use and minors pairing (eligibility package)
//   - Builders: uniform random greedy (default), rotation and backtracking (strategy package)
//   - Sources: static, YAML file, SQLite/PostgreSQL and NATS KV (source package)
//   - Output: terminal and XLSX tables with localized month labels (render package),
//     versioned schedule publishing to NATS KV (publish package)
//
// # Reproducibility
//
// Default schedules are random. Set Config.Seed to make each month's default
// schedule reproducible; every month derives its own seed from it.
//
// See the examples/ directory for complete working examples.
package rota
