package server

import (
	"context"
	"runtime"

	"github.com/lab1702/cellspread/logger"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// ScenarioResult summarises a headless scenario run.
type ScenarioResult struct {
	Scenario  string         `json:"scenario"`
	Ticks     int            `json:"ticks"`
	Records   []ImpactRecord `json:"records"`
	Survivors []ActorInfo    `json:"survivors"`
}

// RunScenarios runs independent scenarios concurrently, each in its own
// world. Results keep the order of scenarios. The first failure cancels
// the remaining runs.
func RunScenarios(ctx context.Context, defs Definitions, cfg Config, scenarios []*Scenario) ([]ScenarioResult, error) {
	results := make([]ScenarioResult, len(scenarios))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, sc := range scenarios {
		i, sc := i, sc
		g.Go(func() error {
			sim, err := NewSimulation(sc, defs, cfg)
			if err != nil {
				return err
			}
			records, err := sim.RunToEnd(ctx)
			if err != nil {
				return err
			}

			results[i] = ScenarioResult{
				Scenario:  sc.Name,
				Ticks:     sim.Tick(),
				Records:   records,
				Survivors: sim.World().Actors(),
			}
			logger.Component("runner").WithFields(logrus.Fields{
				"scenario":  sc.Name,
				"ticks":     sim.Tick(),
				"impacts":   len(records),
				"survivors": len(results[i].Survivors),
			}).Info("scenario finished")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
