package lsp

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dhamidi/kombi/calc"
	"github.com/dhamidi/kombi/parse"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

const diagnosticSource = "kombi"

// line is one expression line of a document.
type line struct {
	index int
	text  string
}

// expressionLines returns the lines holding expressions: everything that is
// neither blank nor a comment starting with '#'.
func expressionLines(text string) []line {
	var lines []line
	for i, l := range strings.Split(text, "\n") {
		l = strings.TrimSuffix(l, "\r")
		trimmed := strings.TrimSpace(l)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		lines = append(lines, line{index: i, text: l})
	}
	return lines
}

// Diagnose evaluates every expression line of text and reports the
// failures. Characters are counted in runes.
func Diagnose(text string, opts ...calc.Option) []protocol.Diagnostic {
	eval := calc.Evaluator(opts...)
	severity := protocol.DiagnosticSeverityError
	source := diagnosticSource

	diagnostics := []protocol.Diagnostic{}
	for _, l := range expressionLines(text) {
		_, err := parse.Run(eval, l.text)
		var perr *parse.Error
		if !errors.As(err, &perr) {
			continue
		}

		col := perr.Pos.Column()
		end := col
		if !perr.Pos.AtEnd() {
			end++
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: protocol.Position{Line: uint32(l.index), Character: uint32(col)},
				End:   protocol.Position{Line: uint32(l.index), Character: uint32(end)},
			},
			Severity: &severity,
			Source:   &source,
			Message:  perr.Message,
		})
	}
	return diagnostics
}

// ValueAt evaluates the expression on the given line of text.
// It reports false for blank, comment and invalid lines.
func ValueAt(text string, lineIndex int, opts ...calc.Option) (int, bool) {
	for _, l := range expressionLines(text) {
		if l.index != lineIndex {
			continue
		}
		v, err := calc.Eval(l.text, opts...)
		return v, err == nil
	}
	return 0, false
}

// hoverText renders the value shown when hovering an expression line.
func hoverText(v int) string {
	return "= " + strconv.Itoa(v)
}

// offsetOf converts an LSP position into a byte offset of text, counting
// characters in runes. Positions past the end clamp to the end.
func offsetOf(text string, pos protocol.Position) int {
	offset := 0
	for i := uint32(0); i < pos.Line; i++ {
		nl := strings.IndexByte(text[offset:], '\n')
		if nl < 0 {
			return len(text)
		}
		offset += nl + 1
	}
	for i := uint32(0); i < pos.Character && offset < len(text); i++ {
		if text[offset] == '\n' {
			break
		}
		_, size := utf8.DecodeRuneInString(text[offset:])
		offset += size
	}
	return offset
}

// applyChange applies one content change to text.
func applyChange(text string, change any) string {
	switch c := change.(type) {
	case protocol.TextDocumentContentChangeEventWhole:
		return c.Text
	case protocol.TextDocumentContentChangeEvent:
		if c.Range == nil {
			return c.Text
		}
		start := offsetOf(text, c.Range.Start)
		end := offsetOf(text, c.Range.End)
		if end < start {
			start, end = end, start
		}
		return text[:start] + c.Text + text[end:]
	}
	return text
}
