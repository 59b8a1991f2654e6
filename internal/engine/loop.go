package engine

import (
	"context"
	"time"

	"Gopher2D/internal/behaviour"
	"Gopher2D/internal/config"
	"Gopher2D/internal/logger"
	"Gopher2D/internal/physics"

	"go.uber.org/zap"
)

// Loop drives one logical frame per Tick and as many fixed physics ticks as
// the accumulated frame time allows.
type Loop struct {
	Components    *behaviour.ComponentManager
	World         *physics.World
	FixedStep     time.Duration
	MaxFixedSteps int

	accumulator time.Duration
	frames      uint64
	ticks       uint64
}

func NewLoop(cfg *config.Config, cm *behaviour.ComponentManager, world *physics.World) *Loop {
	return &Loop{
		Components:    cm,
		World:         world,
		FixedStep:     time.Duration(cfg.Physics.FixedStep * float64(time.Second)),
		MaxFixedSteps: cfg.Engine.MaxFixedSteps,
	}
}

// Tick runs Update on every component, then zero or more physics ticks.
// It returns the number of physics ticks run. Backlog beyond MaxFixedSteps
// is dropped.
func (l *Loop) Tick(frameDelta time.Duration) int {
	l.Components.UpdateAll()
	l.frames++

	l.accumulator += frameDelta
	steps := 0
	for l.accumulator >= l.FixedStep {
		if steps == l.MaxFixedSteps {
			logger.Log.Debug("Dropping physics backlog",
				zap.Duration("backlog", l.accumulator),
				zap.Uint64("frame", l.frames))
			l.accumulator = 0
			break
		}
		l.Components.FixedUpdateAll()
		l.World.Step(float32(l.FixedStep.Seconds()))
		l.accumulator -= l.FixedStep
		l.ticks++
		steps++
	}
	return steps
}

// Frames is the number of logical frames run so far.
func (l *Loop) Frames() uint64 { return l.frames }

// Ticks is the number of physics ticks run so far.
func (l *Loop) Ticks() uint64 { return l.ticks }

// RunHeadless runs frames logical frames of frameDelta each without a clock.
func (l *Loop) RunHeadless(ctx context.Context, frames int, frameDelta time.Duration) error {
	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		l.Tick(frameDelta)
	}
	return nil
}
