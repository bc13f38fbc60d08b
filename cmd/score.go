package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gdavidss/musicolour/config"
	"github.com/gdavidss/musicolour/engine"
	"github.com/gdavidss/musicolour/midi"
	"github.com/gdavidss/musicolour/theme"
	"github.com/gdavidss/musicolour/widgets"
)

func init() {
	rootCmd.AddCommand(scoreCmd)
}

var scoreCmd = &cobra.Command{
	Use:   "score FILE.mid",
	Short: "Score a recorded MIDI file offline",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		notes, err := midi.ReadFile(args[0])
		if err != nil {
			return err
		}
		if len(notes) == 0 {
			return fmt.Errorf("%s contains no note onsets", args[0])
		}

		e := engine.New(cfg.Params())
		var final engine.Result
		for _, n := range notes {
			res, err := e.ProcessNote(n.Pitch, n.TimestampMs, n.Velocity)
			if err != nil {
				return fmt.Errorf("note at %dms: %w", n.TimestampMs, err)
			}
			final = res
		}

		th := theme.New(theme.Plasma)
		header := lipgloss.NewStyle().Foreground(th.Accent())

		fmt.Println(header.Render(fmt.Sprintf("%s  (%d notes)", args[0], len(notes))))
		fmt.Println()
		fmt.Println(widgets.RenderMeter("score", final.Score, 40, th.Meter(final.Score)))
		fmt.Println()
		for _, row := range []struct {
			label string
			value float64
		}{
			{"rhythm", final.Metrics.Rhythmic},
			{"melody", final.Metrics.Melodic},
			{"scale", final.Metrics.Scale},
			{"harmony", final.Metrics.Harmonic},
			{"phrase", final.Metrics.Phrase},
			{"dynamics", final.Metrics.Dynamic},
		} {
			fmt.Println(widgets.RenderMeter(row.label, row.value, 40, th.Meter(row.value)))
		}
		fmt.Println()
		fmt.Printf("detected scale: %s\n", e.Scale().Name)

		return nil
	},
}
