package main

import (
	"Gopher2D/internal/engine"

	"github.com/spf13/cobra"
)

func newWindowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "window",
		Short: "Open a window and move the player with WASD or the arrow keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			return engine.RunWindow(cmd.Context(), configFrom(cmd))
		},
	}
}

func newTerminalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "terminal",
		Short: "Move the player around the terminal with WASD or the arrow keys",
		RunE: func(cmd *cobra.Command, args []string) error {
			return engine.RunTerminal(cmd.Context(), configFrom(cmd))
		},
	}
}
