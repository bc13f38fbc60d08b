// Package widgets renders the terminal meters and key help shared by
// the TUI views.
package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderMeter renders a labeled horizontal bar for a 0-1 value
func RenderMeter(label string, value float64, width int, color lipgloss.Color) string {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	filled := int(value*float64(width) + 0.5)

	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		strings.Repeat("░", width-filled)
	return fmt.Sprintf("%-10s %s %4.2f", label, bar, value)
}

// KeyBinding is a single key help entry
type KeyBinding struct {
	Key  string
	Desc string
}

// KeySection is a titled group of key bindings
type KeySection struct {
	Title string
	Keys  []KeyBinding
}

// RenderKeyHelp formats key bindings in a friendly way
func RenderKeyHelp(sections []KeySection) string {
	var lines []string
	for _, sec := range sections {
		if sec.Title != "" {
			lines = append(lines, sec.Title)
		}
		for _, k := range sec.Keys {
			lines = append(lines, fmt.Sprintf("  %-12s %s", k.Key, k.Desc))
		}
	}
	return strings.Join(lines, "\n")
}
