// Package main compares assignment builders on randomly generated rosters.
//
// For every configured strategy it schedules each month of a year against
// several rosters and reports the filled-slot ratio and how evenly the duty
// was spread across volunteers.
//
//	go run ./test/simulation/cmd/simulation -config test/simulation/configs/dev.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/arloliu/rota"
	"github.com/arloliu/rota/calendar"
	"github.com/arloliu/rota/render"
	"github.com/arloliu/rota/source"
	"github.com/arloliu/rota/strategy"
	"github.com/arloliu/rota/test/simulation/internal/config"
	"github.com/arloliu/rota/test/simulation/internal/metrics"
	"github.com/arloliu/rota/test/simulation/internal/roster"
)

func main() {
	configPath := flag.String("config", "", "Path to configuration file (empty for defaults)")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	reg := prometheus.NewRegistry()
	collector := metrics.NewCollector(reg)

	if cfg.Metrics.Prometheus.Enabled {
		srv := metrics.NewPrometheusServer(fmt.Sprintf(":%d", cfg.Metrics.Prometheus.Port), reg)
		go func() {
			if err := srv.Start(ctx); err != nil {
				log.Printf("Metrics server stopped: %v", err)
			}
		}()
	}

	seed := cfg.Simulation.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	log.Printf("Simulating %d rosters of %d volunteers over %d (seed %d)",
		cfg.Simulation.Runs, cfg.Roster.Size, cfg.Simulation.Year, seed)

	g, gctx := errgroup.WithContext(ctx)
	for _, name := range cfg.Strategies {
		g.Go(func() error {
			// Same rosters for every strategy.
			rng := rand.New(rand.NewPCG(seed, 0))
			for run := range cfg.Simulation.Runs {
				if err := simulate(gctx, cfg, name, rng, uint64(run+1), collector); err != nil {
					return fmt.Errorf("strategy %s: %w", name, err)
				}
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatalf("Simulation failed: %v", err)
	}

	if err := render.WriteText(os.Stdout, report(collector.Summaries())); err != nil {
		log.Fatal(err)
	}

	if cfg.Metrics.Prometheus.Enabled {
		log.Println("Serving metrics until interrupted")
		<-ctx.Done()
	}
}

func simulate(ctx context.Context, cfg *config.Config, name string, rng *rand.Rand, runSeed uint64, collector *metrics.Collector) error {
	plannerCfg := rota.DefaultConfig()
	plannerCfg.Seed = runSeed

	profiles := roster.Generate(cfg.Roster, plannerCfg.Roles, rng)
	planner, err := rota.NewPlanner(&plannerCfg, source.NewStatic(profiles), newStrategy(name, runSeed),
		rota.WithHooks(&rota.Hooks{OnScheduleBuilt: collector.OnScheduleBuilt(name)}),
	)
	if err != nil {
		return err
	}
	defer planner.Close()

	for _, month := range calendar.MonthsOfYear(cfg.Simulation.Year) {
		if err := planner.SelectMonth(ctx, month.Key()); err != nil {
			return err
		}
	}

	return nil
}

func newStrategy(name string, seed uint64) rota.AssignmentStrategy {
	switch name {
	case "rotation":
		return strategy.NewRotation()
	case "backtracking":
		return strategy.NewBacktracking(strategy.WithShuffleSeed(seed))
	default:
		return strategy.NewGreedyRandom()
	}
}

func report(summaries []metrics.Summary) render.Table {
	t := render.Table{
		Title:  "Builder comparison",
		Header: []string{"Strategy", "Schedules", "Fill rate", "Mean spread", "Max spread"},
	}
	for _, s := range summaries {
		t.Rows = append(t.Rows, []string{
			s.Strategy,
			fmt.Sprintf("%d", s.Schedules),
			fmt.Sprintf("%.1f%%", 100*s.FillRate()),
			fmt.Sprintf("%.2f", s.MeanSpread),
			fmt.Sprintf("%d", s.MaxSpread),
		})
	}

	return t
}
