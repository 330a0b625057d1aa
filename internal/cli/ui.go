package cli

import "github.com/charmbracelet/lipgloss"

// Color palette, kept small and consistent across commands.
var (
	colorCyan  = lipgloss.Color("36")  // Teal - titles
	colorWhite = lipgloss.Color("255") // Bright white - values
	colorGray  = lipgloss.Color("245") // Gray - secondary text
	colorDim   = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// styleTitle for block names.
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleDim for secondary/muted text.
	styleDim = lipgloss.NewStyle().Foreground(colorDim)

	// styleHeader for table headers.
	styleHeader = lipgloss.NewStyle().Foreground(colorGray).Bold(true).Padding(0, 1)

	// styleCell for table cells.
	styleCell = lipgloss.NewStyle().Foreground(colorWhite).Padding(0, 1)

	// styleBorder for table borders.
	styleBorder = lipgloss.NewStyle().Foreground(colorDim)
)
