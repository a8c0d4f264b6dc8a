// Package console provides consistent formatting for user-facing messages
// written to stderr. Colors and icons degrade gracefully when stderr is not a
// terminal or when NO_COLOR is set.
package console

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	verboseStyle = lipgloss.NewStyle().Faint(true)
)

// isColorEnabled reports whether styled output should be produced.
func isColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}

func render(style lipgloss.Style, icon, message string) string {
	text := message
	if icon != "" {
		text = icon + " " + message
	}
	if !isColorEnabled() {
		return text
	}
	return style.Render(text)
}

// FormatErrorMessage formats an error message with an ✗ icon.
func FormatErrorMessage(message string) string {
	return render(errorStyle, "✗", message)
}

// FormatWarningMessage formats a warning message with a ⚠ icon.
func FormatWarningMessage(message string) string {
	return render(warningStyle, "⚠", message)
}

// FormatSuccessMessage formats a success message with a ✓ icon.
func FormatSuccessMessage(message string) string {
	return render(successStyle, "✓", message)
}

// FormatInfoMessage formats an informational message with an ℹ icon.
func FormatInfoMessage(message string) string {
	return render(infoStyle, "ℹ", message)
}

// FormatVerboseMessage formats a low-priority progress message.
func FormatVerboseMessage(message string) string {
	return render(verboseStyle, "", message)
}

// FormatErrorWithSuggestions formats an error message followed by a bulleted
// list of suggested next steps. The suggestions section is omitted when the
// list is empty.
func FormatErrorWithSuggestions(message string, suggestions []string) string {
	var b strings.Builder
	b.WriteString(FormatErrorMessage(message))
	if len(suggestions) > 0 {
		b.WriteString("\n\nSuggestions:\n")
		for _, suggestion := range suggestions {
			b.WriteString(fmt.Sprintf("  • %s\n", suggestion))
		}
	}
	return b.String()
}
