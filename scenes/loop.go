package scenes

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// Stepper is anything advanced one fixed step at a time.
type Stepper interface {
	Update()
}

// GameLoop drives a Stepper either at wall-clock tick rate or as fast as
// possible.
type GameLoop struct {
	scene    Stepper
	tickRate int
}

func NewGameLoop(scene Stepper, tickRate int) *GameLoop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &GameLoop{
		scene:    scene,
		tickRate: tickRate,
	}
}

// Run steps the scene on a ticker until ctx is done or maxSteps steps have
// run. maxSteps <= 0 means no limit.
func (g *GameLoop) Run(ctx context.Context, maxSteps int) error {
	ticker := time.NewTicker(time.Second / time.Duration(g.tickRate))
	defer ticker.Stop()

	zap.S().Infow("game loop started", "tick_rate", g.tickRate)

	for steps := 0; maxSteps <= 0 || steps < maxSteps; steps++ {
		select {
		case <-ctx.Done():
			zap.S().Infow("game loop stopped", "steps", steps)
			return ctx.Err()
		case <-ticker.C:
			g.scene.Update()
		}
	}
	zap.S().Infow("game loop finished", "steps", maxSteps)
	return nil
}

// RunFast steps the scene n times back to back, checking ctx between steps.
func (g *GameLoop) RunFast(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		g.scene.Update()
	}
	return nil
}
