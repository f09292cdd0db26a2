// Package printer holds the console styles shared by depdrift's reports and
// messages. Styles degrade to plain text when color is disabled.
package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Style definitions for consistent console output across the application.
var (
	faintStyle      = lipgloss.NewStyle().Faint(true)
	boldStyle       = lipgloss.NewStyle().Bold(true)
	successStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")) // Green
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1")) // Red
	warningStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // Yellow
	infoStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("6")) // Cyan
	dependencyStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
)

// SetNoColor switches every style to plain text when disabled is true.
// It is meant to be called once, before any output is produced.
func SetNoColor(disabled bool) {
	if disabled {
		lipgloss.SetColorProfile(termenv.Ascii)
		return
	}
	lipgloss.SetColorProfile(termenv.EnvColorProfile())
}

// Render functions return styled strings without printing.

// Faint returns text with faint styling.
func Faint(text string) string {
	return faintStyle.Render(text)
}

// Bold returns text with bold styling.
func Bold(text string) string {
	return boldStyle.Render(text)
}

// Success returns text with success (green) styling.
func Success(text string) string {
	return successStyle.Render(text)
}

// Error returns text with error (red) styling.
func Error(text string) string {
	return errorStyle.Render(text)
}

// Warning returns text with warning (yellow) styling.
func Warning(text string) string {
	return warningStyle.Render(text)
}

// Info returns text with info (cyan) styling.
func Info(text string) string {
	return infoStyle.Render(text)
}

// Dependency returns a dependency name highlighted for conflict headers.
func Dependency(name string) string {
	return dependencyStyle.Render(name)
}

// Fprint functions write styled text to w with a newline.

// FprintError writes text to w with error (red) styling.
func FprintError(w io.Writer, text string) {
	_, _ = fmt.Fprintln(w, Error(text))
}

// FprintWarning writes text to w with warning (yellow) styling.
func FprintWarning(w io.Writer, text string) {
	_, _ = fmt.Fprintln(w, Warning(text))
}

// FprintFaint writes text to w with faint styling.
func FprintFaint(w io.Writer, text string) {
	_, _ = fmt.Fprintln(w, Faint(text))
}

// Print functions output styled text to stdout with a newline.

// PrintSuccess prints text with success (green) styling.
func PrintSuccess(text string) {
	fmt.Println(Success(text))
}

// PrintInfo prints text with info (cyan) styling.
func PrintInfo(text string) {
	fmt.Println(Info(text))
}

// PrintError prints text with error (red) styling to stderr.
func PrintError(text string) {
	FprintError(os.Stderr, text)
}
