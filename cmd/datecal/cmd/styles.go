package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorLabel   = lipgloss.Color("#06B6D4")
	colorSuccess = lipgloss.Color("#10B981")
	colorError   = lipgloss.Color("#EF4444")

	labelStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorLabel)
	validStyle   = lipgloss.NewStyle().Foreground(colorSuccess)
	invalidStyle = lipgloss.NewStyle().Foreground(colorError)
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorError)
)

// printField writes "label: value" with a styled label
func printField(w io.Writer, label string, value interface{}) {
	fmt.Fprintf(w, "%s %v\n", labelStyle.Render(label+":"), value)
}

func renderValidity(valid bool) string {
	if valid {
		return validStyle.Render("valid")
	}
	return invalidStyle.Render("invalid")
}
