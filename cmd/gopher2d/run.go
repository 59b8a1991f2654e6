package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"Gopher2D/internal/engine"
	"Gopher2D/internal/input"
	"Gopher2D/internal/logger"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRunCmd() *cobra.Command {
	var (
		direction string
		frames    int
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the player headless with a constant input direction",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := parseDirection(direction)
			if err != nil {
				return err
			}
			cfg := configFrom(cmd)

			scene := engine.NewPlayerScene(cfg, &input.Fixed{Direction: dir})
			defer scene.Close()
			frame := time.Second / time.Duration(cfg.Engine.FrameRate)
			if err := scene.Loop.RunHeadless(cmd.Context(), frames, frame); err != nil {
				return err
			}

			pos := scene.Player.Transform.Position
			vel := scene.Movement.GetCurrentVelocity()
			logger.Log.Info("Run finished",
				zap.Uint64("frames", scene.Loop.Frames()),
				zap.Uint64("ticks", scene.Loop.Ticks()),
				zap.Float32s("position", pos[:]),
				zap.Float32s("velocity", vel[:]))
			fmt.Fprintf(cmd.OutOrStdout(), "position=(%.3f, %.3f) velocity=(%.3f, %.3f)\n",
				pos.X(), pos.Y(), vel.X(), vel.Y())
			return nil
		},
	}

	cmd.Flags().StringVarP(&direction, "direction", "d", "1,0", "input direction as x,y")
	cmd.Flags().IntVarP(&frames, "frames", "n", 60, "logical frames to run")
	return cmd
}

func parseDirection(s string) (mgl32.Vec2, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return mgl32.Vec2{}, errors.Errorf("direction %q: want x,y", s)
	}
	var v mgl32.Vec2
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return mgl32.Vec2{}, errors.Wrapf(err, "direction %q", s)
		}
		v[i] = float32(f)
	}
	return v, nil
}
