package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette — true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorMaroon   lipgloss.Color = "#eba0ac"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface1 lipgloss.Color = "#45475a"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	colorBrand     = colorPink
	colorAccept    = colorGreen
	colorAvoid     = colorRed
	colorMuted     = colorOverlay0
	colorBorder    = colorSurface2
	colorCelebrate = colorMaroon
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorBrand)
	subtitleStyle = lipgloss.NewStyle().Foreground(colorSubtext0)
	boxStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorBorder)
	hintStyle     = lipgloss.NewStyle().Italic(true).Foreground(colorOverlay1)
	resultStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorMauve)
	footerStyle   = lipgloss.NewStyle().Foreground(colorMuted)

	buttonStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2).Bold(true)
	yesStyle      = buttonStyle.BorderForeground(colorAccept).Foreground(colorAccept)
	noStyle       = buttonStyle.BorderForeground(colorAvoid).Foreground(colorAvoid)
	disabledStyle = buttonStyle.Bold(false).BorderForeground(colorSurface1).Foreground(colorMuted)

	burstStyle = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(colorCelebrate).Foreground(colorText).Padding(1, 4)
)
