package parse

import (
	"fmt"
	"unicode/utf8"
)

// Position is an immutable cursor into the input text.
// Advancing produces a new Position; the old one stays valid and can be
// handed to another parser, which is how backtracking works.
type Position struct {
	text   string
	offset int
}

// Start returns the Position at the beginning of text.
func Start(text string) Position {
	return Position{text: text}
}

// Next returns the Position after the current rune.
// It does not check bounds; callers advance only after Current reported a rune.
func (p Position) Next() Position {
	_, size := utf8.DecodeRuneInString(p.text[p.offset:])
	return Position{text: p.text, offset: p.offset + size}
}

// Current returns the rune at the position, or false at end of input.
func (p Position) Current() (rune, bool) {
	if p.AtEnd() {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(p.text[p.offset:])
	return r, true
}

// AtEnd reports whether no input is left. A negative offset also counts as
// end of input.
func (p Position) AtEnd() bool {
	return p.offset >= len(p.text) || p.offset < 0
}

// Offset is the byte offset into the text.
func (p Position) Offset() int { return p.offset }

// Text is the complete input the position points into.
func (p Position) Text() string { return p.text }

// Column is the number of runes before the position.
func (p Position) Column() int {
	if p.offset <= 0 {
		return 0
	}
	if p.offset > len(p.text) {
		return utf8.RuneCountInString(p.text)
	}
	return utf8.RuneCountInString(p.text[:p.offset])
}

func (p Position) String() string {
	return fmt.Sprintf("%d", p.Column())
}
