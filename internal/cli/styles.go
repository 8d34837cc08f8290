// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/ankitm/fintrack/internal/model"
)

var (
	// IncomeColor renders income amounts.
	IncomeColor = lipgloss.Color("#10B981") // Emerald
	// ExpenseColor renders expense amounts.
	ExpenseColor = lipgloss.Color("#F43F5E") // Rose
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#FFE66D") // Yellow
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#95E1D3") // Light teal
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)

	// IncomeStyle formats income figures.
	IncomeStyle = lipgloss.NewStyle().
			Foreground(IncomeColor)

	// ExpenseStyle formats expense figures.
	ExpenseStyle = lipgloss.NewStyle().
			Foreground(ExpenseColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)
)

// CategoryStyle returns a style colored for the given category.
func CategoryStyle(category string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(model.ColorFor(category)))
}

// Bar renders a fixed-width progress bar filled to the given ratio. Ratios
// above 1 are clamped to a full bar.
func Bar(ratio float64, width int, style lipgloss.Style) string {
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	filled := int(ratio * float64(width))
	return style.Render(strings.Repeat("█", filled)) + SubtleStyle.Render(strings.Repeat("░", width-filled))
}
