package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary
	colorGreen  = lipgloss.Color("35")  // Green - winners, success
	colorYellow = lipgloss.Color("220") // Amber - warnings, rank badge
	colorRed    = lipgloss.Color("167") // Soft red - errors, losers
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - labels
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWinner marks the better side of a comparison.
	StyleWinner = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)

	// StyleLoser marks the roasted side.
	StyleLoser = lipgloss.NewStyle().Foreground(colorRed)

	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleLabel   = lipgloss.NewStyle().Foreground(colorGray).Width(16)
	styleBadge   = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	styleCard    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorDim).Padding(0, 1)
	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
)

const (
	iconWarning = "!"
	iconBullet  = "›"
)

func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printNextStep prints a suggested next command.
func printNextStep(description, cmd string) {
	fmt.Println(StyleDim.Render(description+":") + " " + styleCommand.Render(cmd))
}
