// Package ui provides the color palette and styles for wayinfo's text output
package ui

import "github.com/charmbracelet/lipgloss"

// Color palette - consistent across the application
var (
	ColorPrimary = lipgloss.Color("39")  // Bright blue
	ColorValue   = lipgloss.Color("220") // Yellow
	ColorSuccess = lipgloss.Color("82")  // Green
	ColorWarning = lipgloss.Color("214") // Orange
	ColorError   = lipgloss.Color("196") // Red
)

// Palette holds the styles the renderer applies to each report category.
// The zero value renders everything as plain text, which is what
// non-terminal consumers get.
type Palette struct {
	Header     lipgloss.Style // report heading
	Interface  lipgloss.Style // interface names
	Version    lipgloss.Style // numeric versions
	SeatName   lipgloss.Style // seat display names
	OutputName lipgloss.Style // output display names
	Info       lipgloss.Style // informational notes
	Warn       lipgloss.Style // missing-protocol warnings
}

// NewPalette returns the colorized palette when enabled, or the plain
// pass-through palette otherwise.
func NewPalette(color bool) Palette {
	if !color {
		return Palette{}
	}
	return Palette{
		Header:     lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
		Interface:  lipgloss.NewStyle().Foreground(ColorPrimary),
		Version:    lipgloss.NewStyle().Foreground(ColorValue),
		SeatName:   lipgloss.NewStyle().Foreground(ColorSuccess),
		OutputName: lipgloss.NewStyle().Foreground(ColorValue),
		Info:       lipgloss.NewStyle().Foreground(ColorWarning),
		Warn:       lipgloss.NewStyle().Foreground(ColorError),
	}
}
