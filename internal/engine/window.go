package engine

import (
	"context"
	"runtime"
	"time"

	"Gopher2D/internal/config"
	"Gopher2D/internal/input"
	"Gopher2D/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// RunWindow opens a glfw window, feeds WASD/arrow keys into the player and
// runs the loop until the window closes or ctx is done. The player position
// is shown as the clear color so motion is visible without a renderer.
func RunWindow(ctx context.Context, cfg *config.Config) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "init glfw")
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Engine.WindowWidth, cfg.Engine.WindowHeight, "Gopher2D", nil, nil)
	if err != nil {
		return errors.Wrap(err, "create window")
	}
	defer window.Destroy()
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "init OpenGL")
	}
	logger.Log.Info("Window opened", zap.String("gl", gl.GoStr(gl.GetString(gl.VERSION))))

	controls := input.NewPlayerControls(input.NewGLFWKeyboard(window))
	scene := NewPlayerScene(cfg, controls)
	defer scene.Close()

	lastTime := glfw.GetTime()
	for !window.ShouldClose() {
		if ctx.Err() != nil {
			break
		}
		glfw.PollEvents()

		now := glfw.GetTime()
		delta := time.Duration((now - lastTime) * float64(time.Second))
		lastTime = now

		scene.Loop.Tick(delta)

		r, g := positionColor(scene.Player.Transform.Position.X()), positionColor(scene.Player.Transform.Position.Y())
		gl.ClearColor(r, g, 0.2, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)
		window.SwapBuffers()
	}

	logger.Log.Info("Window closed",
		zap.Uint64("frames", scene.Loop.Frames()),
		zap.Uint64("ticks", scene.Loop.Ticks()))
	return nil
}

// positionColor folds a coordinate into [0,1] so the clear color cycles as
// the player moves.
func positionColor(v float32) float32 {
	const period = 20
	m := v - period*float32(int(v/period))
	if m < 0 {
		m += period
	}
	return m / period
}
