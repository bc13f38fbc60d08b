package cmd

import (
	"github.com/spf13/cobra"

	"github.com/gdavidss/musicolour/debug"
)

var debugFlag bool

var rootCmd = &cobra.Command{
	Use:   "musicolour",
	Short: "Real-time musicality scoring for MIDI input",
	Long: `musicolour scores a stream of note onsets for musicality and turns
the result into a decaying excitement level. Play live from a MIDI
keyboard, score recorded .mid files, or run the scoring engine as an
HTTP service.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if debugFlag {
			return debug.Enable()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "write a debug log to ~/.config/musicolour/debug.log")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
