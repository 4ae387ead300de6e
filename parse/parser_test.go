package parse

import (
	"errors"
	"strings"
	"testing"
	"unicode"
)

func TestReturn(t *testing.T) {
	pos := at("abc", 1)
	r := Return("v")(pos)
	if !r.OK() || r.Value() != "v" || r.Rest() != pos {
		t.Errorf("Return consumed input or failed: %+v", r)
	}
}

func TestFail(t *testing.T) {
	pos := at("abc", 1)
	r := Fail[int]("nope")(pos)
	if r.OK() || r.Message() != "nope" || r.Pos() != pos {
		t.Errorf("Fail = %+v", r)
	}
}

func TestSatisfy(t *testing.T) {
	digit := Satisfy(unicode.IsDigit)

	tests := []struct {
		name    string
		input   string
		ok      bool
		value   rune
		offset  int
		message string
	}{
		{name: "match", input: "7x", ok: true, value: '7', offset: 1},
		{name: "mismatch", input: "x7", offset: 0, message: "character [x] does not satisfy condition"},
		{name: "end of input", input: "", offset: 0, message: "unexpected end of input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := digit(Start(tt.input))
			if r.OK() != tt.ok {
				t.Fatalf("OK() = %v, want %v (%q)", r.OK(), tt.ok, r.Message())
			}
			if r.Rest().Offset() != tt.offset {
				t.Errorf("offset = %d, want %d", r.Rest().Offset(), tt.offset)
			}
			if tt.ok && r.Value() != tt.value {
				t.Errorf("value = %q, want %q", r.Value(), tt.value)
			}
			if !tt.ok && r.Message() != tt.message {
				t.Errorf("message = %q, want %q", r.Message(), tt.message)
			}
		})
	}
}

func TestEndOfInput(t *testing.T) {
	if r := EndOfInput()(Start("")); !r.OK() {
		t.Errorf("EndOfInput failed on empty input: %q", r.Message())
	}

	pos := at("ab", 1)
	r := EndOfInput()(pos)
	if r.OK() {
		t.Fatalf("EndOfInput succeeded with input left")
	}
	if r.Message() != "end of input expected" || r.Pos() != pos {
		t.Errorf("EndOfInput failure = %q at %s", r.Message(), r.Pos())
	}
}

func TestRun(t *testing.T) {
	word := Map(Many1(Satisfy(unicode.IsLetter)), Runes)
	p := Left(word, EndOfInput())

	v, err := Run(p, "hello")
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if v != "hello" {
		t.Errorf("Run = %q, want %q", v, "hello")
	}

	_, err = Run(p, "hello!")
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("Run error = %v, want *Error", err)
	}
	if perr.Pos.Offset() != 5 {
		t.Errorf("error offset = %d, want 5", perr.Pos.Offset())
	}
	if perr.Error() != "5: end of input expected" {
		t.Errorf("Error() = %q", perr.Error())
	}
	if !strings.Contains(perr.Pretty(), "^ end of input expected") {
		t.Errorf("Pretty() = %q", perr.Pretty())
	}
}

func TestTryParse(t *testing.T) {
	p := Satisfy(unicode.IsDigit)

	got := TryParse(p, "1",
		func(r rune) string { return "value " + string(r) },
		func(msg string, pos Position) string { return "error " + msg })
	if got != "value 1" {
		t.Errorf("TryParse success = %q", got)
	}

	got = TryParse(p, "a",
		func(r rune) string { return "value " + string(r) },
		func(msg string, pos Position) string { return "error at " + pos.String() })
	if got != "error at 0" {
		t.Errorf("TryParse failure = %q", got)
	}
}

func TestRune(t *testing.T) {
	if r := Rune('(')(Start("(")); !r.OK() || r.Value() != '(' {
		t.Errorf("Rune('(') = %+v", r)
	}
	if r := Rune('(')(Start(")")); r.OK() {
		t.Errorf("Rune('(') matched ')'")
	}
}
