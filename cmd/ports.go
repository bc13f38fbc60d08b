package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gdavidss/musicolour/midi"
)

func init() {
	rootCmd.AddCommand(portsCmd)
}

var portsCmd = &cobra.Command{
	Use:   "ports",
	Short: "List available MIDI input ports",
	Run: func(cmd *cobra.Command, args []string) {
		ports := midi.ListPorts()
		if len(ports) == 0 {
			fmt.Println("No MIDI inputs found")
			return
		}
		for _, p := range ports {
			fmt.Println(p)
		}
	},
}
