// Package styles provides shared lipgloss styles for CLI output.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#1e66f5", Dark: "#7aa2f7"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#9ca0b0", Dark: "#565f89"}
	colorSuccess = lipgloss.AdaptiveColor{Light: "#40a02b", Dark: "#9ece6a"}
	colorWarning = lipgloss.AdaptiveColor{Light: "#df8e1d", Dark: "#e0af68"}
	colorError   = lipgloss.AdaptiveColor{Light: "#d20f39", Dark: "#f7768e"}
)

var (
	// TextPrimaryBoldStyle renders section headers.
	TextPrimaryBoldStyle = lipgloss.NewStyle().Foreground(colorPrimary).Bold(true)

	// TextBoldStyle renders emphasized labels.
	TextBoldStyle = lipgloss.NewStyle().Bold(true)

	// TextMutedStyle renders secondary details.
	TextMutedStyle = lipgloss.NewStyle().Foreground(colorMuted)

	// TextSuccessStyle renders pass indicators.
	TextSuccessStyle = lipgloss.NewStyle().Foreground(colorSuccess)

	// TextWarningStyle renders warning indicators.
	TextWarningStyle = lipgloss.NewStyle().Foreground(colorWarning)

	// TextErrorStyle renders failure indicators.
	TextErrorStyle = lipgloss.NewStyle().Foreground(colorError)
)
