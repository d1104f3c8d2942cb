// Command sim plays matches headless with scripted players and reports what
// happened to the ball.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/automoto/dunkball/components"
	"github.com/automoto/dunkball/config"
	"github.com/automoto/dunkball/scenes"
	"github.com/automoto/dunkball/shared/logging"
	"github.com/automoto/dunkball/tags"
	"github.com/yohamta/donburi"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", "", "YAML file overlaid on the default configuration")
	matches := flag.Int("matches", 0, "Matches to run in parallel (0 = config)")
	steps := flag.Int("steps", 0, "Fixed steps per match (0 = config)")
	realtime := flag.Bool("realtime", false, "Step at the tick rate instead of as fast as possible")
	level := flag.String("log", "", "Log level (empty = config)")
	seed := flag.Int64("seed", 1, "Base seed for scripted players")
	flag.Parse()

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *matches > 0 {
		config.Sim.Matches = *matches
	}
	if *steps > 0 {
		config.Sim.Steps = *steps
	}
	if *level != "" {
		config.Sim.LogLevel = *level
	}

	logger, err := logging.New(logging.Options{Level: config.Sim.LogLevel, JSON: true})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := run(ctx, config.Sim.Matches, config.Sim.Steps, *realtime, *seed)
	if err != nil {
		zap.S().Errorw("simulation aborted", "error", err)
		os.Exit(1)
	}
	for i, r := range results {
		fmt.Printf("match %d: scene=%s steps=%d shots=%d held=%t\n", i, r.Scene, r.Steps, r.Shots, r.Held)
	}
}

// Result summarises one finished match.
type Result struct {
	Scene string
	Steps int
	Shots int
	Held  bool
}

// run plays n matches concurrently, one goroutine per scene.
func run(ctx context.Context, n, steps int, realtime bool, seed int64) ([]Result, error) {
	matches := make([]*scenes.CourtScene, n)
	g, ctx := errgroup.WithContext(ctx)

	for i := 0; i < n; i++ {
		scene := scenes.NewCourtScene(NewScript(seed + int64(i)))
		matches[i] = scene

		g.Go(func() error {
			loop := scenes.NewGameLoop(scene, config.Physics.TickRate)
			var err error
			if realtime {
				err = loop.Run(ctx, steps)
			} else {
				err = loop.RunFast(ctx, steps)
			}
			if err != nil {
				return fmt.Errorf("match %d: %w", i, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]Result, n)
	for i, scene := range matches {
		results[i] = summarise(scene)
		zap.S().Infow("match finished",
			"match", i,
			"scene", results[i].Scene,
			"shots", results[i].Shots,
		)
	}
	return results, nil
}

func summarise(scene *scenes.CourtScene) Result {
	r := Result{Scene: scene.ID.String(), Steps: scene.Steps()}
	tags.Ball.Each(scene.World(), func(e *donburi.Entry) {
		poss := components.Possession.Get(e)
		r.Shots += poss.Shots
		r.Held = r.Held || poss.State.Held()
	})
	return r
}
