package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gdavidss/musicolour/config"
	"github.com/gdavidss/musicolour/engine"
	"github.com/gdavidss/musicolour/feedback"
	"github.com/gdavidss/musicolour/midi"
	"github.com/gdavidss/musicolour/theme"
	"github.com/gdavidss/musicolour/tui"
)

var livePort string

func init() {
	liveCmd.Flags().StringVar(&livePort, "port", "", "MIDI input port name (default: configured or first available)")
	rootCmd.AddCommand(liveCmd)
}

var liveCmd = &cobra.Command{
	Use:   "live",
	Short: "Score a live MIDI keyboard with the TUI meter display",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		port := cfg.Input.PortName
		if livePort != "" {
			port = livePort
		}

		e := engine.New(cfg.Params())
		acc := feedback.NewAccumulator(cfg.UI.DecayRate)
		watcher := midi.NewWatcher(port)

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go watcher.Run(ctx)
		go acc.Run(ctx)

		m := tui.NewModel(e, acc, watcher, cfg, theme.New(theme.Plasma))
		p := tea.NewProgram(m, tea.WithAltScreen())

		if _, err := p.Run(); err != nil {
			return fmt.Errorf("tui: %w", err)
		}
		return nil
	},
}
