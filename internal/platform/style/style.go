// Package style centraliza los estilos de terminal (lipgloss) de petsctl.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPass = lipgloss.AdaptiveColor{Light: "#86b300", Dark: "#c2d94c"}
	colorFail = lipgloss.AdaptiveColor{Light: "#f07171", Dark: "#f07178"}
	colorMute = lipgloss.AdaptiveColor{Light: "#828c99", Dark: "#6c7680"}
	colorInfo = lipgloss.AdaptiveColor{Light: "#399ee6", Dark: "#59c2ff"}
)

const (
	IconPass = "✓"
	IconFail = "✖"
)

var (
	Success = lipgloss.NewStyle().Foreground(colorPass).Bold(true)
	Error   = lipgloss.NewStyle().Foreground(colorFail).Bold(true)
	Info    = lipgloss.NewStyle().Foreground(colorInfo)
	Dim     = lipgloss.NewStyle().Foreground(colorMute)
	Bold    = lipgloss.NewStyle().Bold(true)
)

// SetColorMode aplica --color (always|auto|never). "auto" deja que lipgloss detecte la TTY.
func SetColorMode(mode string) {
	switch mode {
	case "never":
		_ = os.Setenv("NO_COLOR", "1")
		Success = lipgloss.NewStyle()
		Error = lipgloss.NewStyle()
		Info = lipgloss.NewStyle()
		Dim = lipgloss.NewStyle()
		Bold = lipgloss.NewStyle()
	case "always":
		_ = os.Unsetenv("NO_COLOR")
		_ = os.Setenv("CLICOLOR_FORCE", "1")
		Success = lipgloss.NewStyle().Foreground(colorPass).Bold(true)
		Error = lipgloss.NewStyle().Foreground(colorFail).Bold(true)
		Info = lipgloss.NewStyle().Foreground(colorInfo)
		Dim = lipgloss.NewStyle().Foreground(colorMute)
		Bold = lipgloss.NewStyle().Bold(true)
	}
}
