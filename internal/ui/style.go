// Package ui renders the human-facing console output of the CLI: the banner,
// progress lines, next steps, warnings and errors. Styling goes through
// lipgloss and degrades to plain text when stdout is not a terminal.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

var (
	yellowStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	cyanStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	greenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	redStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	boldStyle   = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// Amber is the brand accent color.
func Amber(s string) string { return Yellow(s) }

func Yellow(s string) string { return yellowStyle.Render(s) }
func Cyan(s string) string   { return cyanStyle.Render(s) }
func Green(s string) string  { return greenStyle.Render(s) }
func Red(s string) string    { return redStyle.Render(s) }
func Bold(s string) string   { return boldStyle.Render(s) }
func Dim(s string) string    { return dimStyle.Render(s) }

// RedFor renders s in red when w itself supports color. Use it for writers
// other than stdout, such as stderr.
func RedFor(w io.Writer, s string) string {
	return redStyle.Renderer(lipgloss.NewRenderer(w)).Render(s)
}

// Link wraps text in an OSC 8 terminal hyperlink pointing at url. Without a
// color-capable terminal the url is appended in parentheses instead.
func Link(text, url string) string {
	if lipgloss.ColorProfile() == termenv.Ascii {
		return fmt.Sprintf("%s (%s)", text, url)
	}
	return ansi.SetHyperlink(url) + Cyan(text) + ansi.ResetHyperlink()
}
