package main

import (
	"context"

	"Gopher2D/internal/config"
	"Gopher2D/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type cfgKey struct{}

func newRootCmd() *cobra.Command {
	var cfgFile string

	root := &cobra.Command{
		Use:           "gopher2d",
		Short:         "Drive a 2D player body from directional input.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("speed") {
				speed, _ := cmd.Flags().GetFloat32("speed")
				cfg.Movement.Speed = speed
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			logger.InitWithConfig(cfg.Logger)
			logger.Log.Debug("Configuration loaded", zap.String("file", cfgFile))
			cmd.SetContext(context.WithValue(cmd.Context(), cfgKey{}, cfg))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Log.Sync()
		},
	}

	root.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (YAML)")
	root.PersistentFlags().Float32("speed", 0, "override movement.speed")

	root.AddCommand(newRunCmd(), newWindowCmd(), newTerminalCmd())
	return root
}

func configFrom(cmd *cobra.Command) *config.Config {
	if cfg, ok := cmd.Context().Value(cfgKey{}).(*config.Config); ok {
		return cfg
	}
	return config.Default()
}
