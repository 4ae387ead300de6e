package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/dhamidi/kombi/parse"
)

var errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

// printFailure writes the caret display of a parse failure, in red when
// color is enabled.
func printFailure(w io.Writer, color bool, msg string, pos parse.Position) {
	text := parse.PrettyPrintError(msg, pos)
	if color {
		text = errorStyle.Render(text)
	}
	fmt.Fprintln(w, text)
}
