package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")) // Green
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")).Bold(true)
)

// render styles text only when w is a terminal.
func render(w io.Writer, style lipgloss.Style, text string) string {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return style.Render(text)
	}
	return text
}
