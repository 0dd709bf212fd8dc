package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/litigio-labs/consulta-cli/internal/core/domain"
)

// Console styling for progress lines and the run summary.
var (
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	styleMuted = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	styleSuccess = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	styleWarning = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	styleError = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	styleSummaryBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

// styleForStatus picks the style matching a case outcome.
func styleForStatus(status domain.Status) lipgloss.Style {
	switch status {
	case domain.StatusSuccess:
		return styleSuccess
	case domain.StatusPrivate, domain.StatusNotFound:
		return styleWarning
	default:
		return styleError
	}
}
