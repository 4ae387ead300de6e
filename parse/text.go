package parse

import (
	"fmt"
	"unicode"
)

var whitespace = Map(Many(Satisfy(unicode.IsSpace)), Runes)

// Whitespace consumes any run of white space, possibly empty.
func Whitespace() Parser[string] {
	return whitespace
}

// TrimLeft skips white space before p.
func TrimLeft[T any](p Parser[T]) Parser[T] {
	return Right(whitespace, p)
}

// TrimRight skips white space after p.
func TrimRight[T any](p Parser[T]) Parser[T] {
	return Left(p, whitespace)
}

// Runes turns a rune slice into a string.
func Runes(rs []rune) string {
	return string(rs)
}

// Literal matches the exact string s.
// On mismatch it fails where the input first differs from s.
func Literal(s string) Parser[string] {
	var p Parser[Unit] = Return(Unit{})
	for _, r := range s {
		p = Left(p, Rune(r))
	}
	return ErrorText(Const(p, s), fmt.Sprintf("%q expected", s))
}
