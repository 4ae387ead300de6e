package parse

import (
	"strings"
)

const (
	prettyWidth   = 30
	prettyContext = 3
	prettyElision = "..."
)

// PrettyPrintError renders msg under an excerpt of the input with a caret
// pointing at pos:
//
//	...5 *
//	      ^ expected integer or '('
//
// Failures past the fourth rune show the three runes before the failure
// preceded by "...". The excerpt is at most 30 runes long, not counting the
// elision.
func PrettyPrintError(msg string, pos Position) string {
	text := []rune(pos.Text())
	col := pos.Column()

	var line string
	indent := col
	if col > prettyContext {
		line = prettyElision + takeMax(text[col-prettyContext:], prettyWidth)
		indent = len(prettyElision) + prettyContext
	} else {
		line = takeMax(text, prettyWidth)
	}

	var b strings.Builder
	b.WriteString(line)
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", indent))
	b.WriteString("^ ")
	b.WriteString(msg)
	return b.String()
}

func takeMax(rs []rune, n int) string {
	if len(rs) > n {
		rs = rs[:n]
	}
	return string(rs)
}
