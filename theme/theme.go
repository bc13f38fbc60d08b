package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Palette *Palette
}

func New(palette *Palette) *Theme {
	return &Theme{Palette: palette}
}

// Color roles mapped to palette positions (0-1)
const (
	RoleMuted  = 0.15 // dim labels
	RoleFG     = 0.45 // readable text
	RoleAccent = 0.65 // headers, highlights
)

func (t *Theme) FG() lipgloss.Color {
	return t.color(RoleFG)
}

func (t *Theme) Accent() lipgloss.Color {
	return t.color(RoleAccent)
}

func (t *Theme) Muted() lipgloss.Color {
	return t.color(RoleMuted)
}

// Meter returns the ramp color for a normalized meter value
func (t *Theme) Meter(norm float64) lipgloss.Color {
	return lipgloss.Color(rgbToHex(t.Palette.Lookup(norm)))
}

func (t *Theme) color(norm float64) lipgloss.Color {
	return lipgloss.Color(rgbToHex(t.Palette.Lookup(norm)))
}

func rgbToHex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}
