// Package parse is a small monadic parser-combinator library.
//
// A Parser is a pure function from a Position to a Result. Parsers are built
// from a handful of primitives (Return, Fail, Satisfy, EndOfInput) and
// combined with Map, Bind, Apply, Choice, Many, Chainl1 and friends into
// recursive-descent parsers for context-free grammars.
//
// Parsers never mutate anything, so the same parser can be run again from an
// earlier Position. Choice and Chainl1 rely on this to backtrack.
package parse

import (
	"fmt"
)

// Parser parses a value of type T starting at a Position.
type Parser[T any] func(Position) Result[T]

// Unit is the value of parsers that produce nothing interesting.
type Unit struct{}

const (
	msgUnexpectedEnd = "unexpected end of input"
	msgExpectedEnd   = "end of input expected"
)

// Return succeeds with value without consuming input.
func Return[T any](value T) Parser[T] {
	return func(pos Position) Result[T] {
		return Success(value, pos)
	}
}

// Fail fails with msg without consuming input.
func Fail[T any](msg string) Parser[T] {
	return func(pos Position) Result[T] {
		return Failure[T](msg, pos)
	}
}

// Satisfy consumes one rune if it matches pred.
// A mismatch fails at the unadvanced position.
func Satisfy(pred func(rune) bool) Parser[rune] {
	return func(pos Position) Result[rune] {
		r, ok := pos.Current()
		if !ok {
			return Failure[rune](msgUnexpectedEnd, pos)
		}
		if !pred(r) {
			return Failure[rune](fmt.Sprintf("character [%c] does not satisfy condition", r), pos)
		}
		return Success(r, pos.Next())
	}
}

// EndOfInput succeeds only when no input is left.
func EndOfInput() Parser[Unit] {
	return func(pos Position) Result[Unit] {
		if pos.AtEnd() {
			return Success(Unit{}, pos)
		}
		return Failure[Unit](msgExpectedEnd, pos)
	}
}

// Rune matches exactly r.
func Rune(r rune) Parser[rune] {
	return Satisfy(func(c rune) bool { return c == r })
}

// AnyRune matches any single rune.
func AnyRune() Parser[rune] {
	return Satisfy(func(rune) bool { return true })
}

// Error is a parse failure returned by Run.
type Error struct {
	Message string
	Pos     Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}

// Pretty renders the failure with a caret under the failing column.
func (e *Error) Pretty() string {
	return PrettyPrintError(e.Message, e.Pos)
}

// TryParse runs p over text and hands the outcome to onSuccess or onError.
// It returns whatever the chosen handler returns.
func TryParse[T, R any](p Parser[T], text string, onSuccess func(T) R, onError func(string, Position) R) R {
	return Match(p(Start(text)),
		func(v T, _ Position) R { return onSuccess(v) },
		onError)
}

// Run parses text with p and returns the value, or an *Error on failure.
func Run[T any](p Parser[T], text string) (T, error) {
	var zero T
	var perr error
	v := TryParse(p, text,
		func(v T) T { return v },
		func(msg string, pos Position) T {
			perr = &Error{Message: msg, Pos: pos}
			return zero
		})
	return v, perr
}
