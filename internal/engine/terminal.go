package engine

import (
	"context"
	"fmt"
	"time"

	"Gopher2D/internal/config"
	"Gopher2D/internal/input"
	"Gopher2D/internal/logger"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// RunTerminal draws the player as a glyph on a tcell screen. One world unit
// is one cell; the origin is the screen centre and +Y is up.
func RunTerminal(ctx context.Context, cfg *config.Config) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	defer screen.Fini()

	return runTerminal(ctx, cfg, screen)
}

func runTerminal(ctx context.Context, cfg *config.Config, screen tcell.Screen) error {
	keyboard := input.NewTerminalKeyboard()
	controls := input.NewPlayerControls(keyboard)
	scene := NewPlayerScene(cfg, controls)
	defer scene.Close()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	frame := time.Second / time.Duration(cfg.Engine.FrameRate)
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if ev == nil {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
					logger.Log.Info("Terminal closed", zap.Uint64("frames", scene.Loop.Frames()))
					return nil
				}
				if !keyboard.HandleEvent(ev) && ev.Key() == tcell.KeyRune && ev.Rune() == ' ' {
					scene.Movement.Stop()
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case now := <-ticker.C:
			scene.Loop.Tick(now.Sub(last))
			last = now
			draw(screen, scene)
		}
	}
}

func draw(screen tcell.Screen, scene *Scene) {
	screen.Clear()
	w, h := screen.Size()
	pos := scene.Player.Transform.Position
	x := w/2 + int(pos.X())
	y := h/2 - int(pos.Y())
	if x >= 0 && x < w && y >= 0 && y < h {
		screen.SetContent(x, y, '@', nil, tcell.StyleDefault.Foreground(tcell.ColorGreen))
	}

	v := scene.Movement.GetCurrentVelocity()
	status := fmt.Sprintf("pos (%.1f, %.1f)  vel (%.1f, %.1f)  speed %.1f  WASD/arrows move, space stops, Esc quits",
		pos.X(), pos.Y(), v.X(), v.Y(), scene.Movement.Speed)
	for i, r := range status {
		if i >= w {
			break
		}
		screen.SetContent(i, 0, r, nil, tcell.StyleDefault)
	}
	screen.Show()
}
