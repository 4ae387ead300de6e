package parse

import (
	"testing"
)

func at(text string, n int) Position {
	pos := Start(text)
	for i := 0; i < n; i++ {
		pos = pos.Next()
	}
	return pos
}

func TestPosition_Advance(t *testing.T) {
	start := Start("ab")

	if r, ok := start.Current(); !ok || r != 'a' {
		t.Fatalf("Current() = %q, %v; want 'a', true", r, ok)
	}

	next := start.Next()
	if r, ok := next.Current(); !ok || r != 'b' {
		t.Errorf("after Next: Current() = %q, %v; want 'b', true", r, ok)
	}
	if start.Offset() != 0 {
		t.Errorf("Next modified the original position: offset %d", start.Offset())
	}

	end := next.Next()
	if !end.AtEnd() {
		t.Errorf("AtEnd() = false at offset %d", end.Offset())
	}
	if _, ok := end.Current(); ok {
		t.Errorf("Current() reported a rune at end of input")
	}
}

func TestPosition_EmptyInput(t *testing.T) {
	pos := Start("")
	if !pos.AtEnd() {
		t.Errorf("empty input is not at end")
	}
	if _, ok := pos.Current(); ok {
		t.Errorf("Current() reported a rune on empty input")
	}
}

func TestPosition_NegativeOffsetIsEnd(t *testing.T) {
	pos := Position{text: "abc", offset: -1}
	if !pos.AtEnd() {
		t.Errorf("negative offset is not at end")
	}
	if _, ok := pos.Current(); ok {
		t.Errorf("Current() reported a rune at negative offset")
	}
	if got := pos.Column(); got != 0 {
		t.Errorf("Column() = %d, want 0", got)
	}
}

func TestPosition_MultiByteRunes(t *testing.T) {
	pos := at("äöü!", 2)
	if r, _ := pos.Current(); r != 'ü' {
		t.Errorf("Current() = %q, want 'ü'", r)
	}
	if got := pos.Offset(); got != 4 {
		t.Errorf("Offset() = %d, want 4", got)
	}
	if got := pos.Column(); got != 2 {
		t.Errorf("Column() = %d, want 2", got)
	}
}
