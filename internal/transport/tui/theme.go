package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(colorLavender).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(colorOverlay1)
	errorStyle  = lipgloss.NewStyle().Foreground(colorRed)
	statusStyle = lipgloss.NewStyle().Foreground(colorText)
	winStyle    = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)

	cellStyle   = lipgloss.NewStyle().Padding(0, 1).Foreground(colorText)
	cursorStyle = cellStyle.Background(colorSurface1)
	lineStyle   = cellStyle.Foreground(colorGreen).Bold(true)

	symbolStyles = map[string]lipgloss.Style{
		"X": lipgloss.NewStyle().Foreground(colorBlue).Bold(true),
		"O": lipgloss.NewStyle().Foreground(colorPeach).Bold(true),
	}
)
