package parse

import (
	"sync"
)

// Map transforms the value of a successful parse.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(pos Position) Result[U] {
		return MapResult(p(pos), f)
	}
}

// Const replaces the value of a successful parse with value.
func Const[T, U any](p Parser[T], value U) Parser[U] {
	return Map(p, func(T) U { return value })
}

// Bind runs p and then the parser f builds from its value, starting where p
// stopped. f is not called when p fails.
func Bind[T, U any](p Parser[T], f func(T) Parser[U]) Parser[U] {
	return func(pos Position) Result[U] {
		return BindResult(p(pos), func(v T, rest Position) Result[U] {
			return f(v)(rest)
		})
	}
}

// Apply runs fp for a function and then vp, and applies the function to the
// value of vp.
func Apply[T, U any](fp Parser[func(T) U], vp Parser[T]) Parser[U] {
	return Bind(fp, func(f func(T) U) Parser[U] {
		return Map(vp, f)
	})
}

// Choice runs a, and if it fails runs b from the same position.
// The failure of a is discarded entirely; b's result is returned as is.
func Choice[T any](a, b Parser[T]) Parser[T] {
	return func(pos Position) Result[T] {
		r := a(pos)
		if r.OK() {
			return r
		}
		return b(pos)
	}
}

// Or folds Choice over ps from the left.
func Or[T any](first Parser[T], rest ...Parser[T]) Parser[T] {
	p := first
	for _, q := range rest {
		p = Choice(p, q)
	}
	return p
}

// Many applies p zero or more times. It never fails.
//
// This is Choice(Many1(p), Return(empty)) run as a loop, so long repetitions
// do not grow the stack. p must consume input when it succeeds.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(pos Position) Result[[]T] {
		items := []T{}
		for {
			r := p(pos)
			if !r.OK() {
				return Success(items, pos)
			}
			items = append(items, r.Value())
			pos = r.Rest()
		}
	}
}

// Many1 applies p one or more times. It fails iff the first application fails.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return Bind(p, func(first T) Parser[[]T] {
		return Map(Many(p), func(rest []T) []T {
			return append([]T{first}, rest...)
		})
	})
}

// Chainl1 parses one or more elem separated by op and folds them from the
// left with the functions op produces, so a-b-c is (a-b)-c.
// Once the first element parses it always succeeds: a trailing operator that
// is not followed by an element is left unconsumed.
func Chainl1[T any](elem Parser[T], op Parser[func(T, T) T]) Parser[T] {
	step := func(acc T) Parser[T] {
		return Bind(op, func(f func(T, T) T) Parser[T] {
			return Map(elem, func(b T) T { return f(acc, b) })
		})
	}
	return Bind(elem, func(first T) Parser[T] {
		return func(pos Position) Result[T] {
			acc := first
			for {
				r := step(acc)(pos)
				if !r.OK() {
					return Success(acc, pos)
				}
				acc, pos = r.Value(), r.Rest()
			}
		}
	})
}

// ErrorText replaces the message of a failure of p with msg.
// The failure position is kept.
func ErrorText[T any](p Parser[T], msg string) Parser[T] {
	return func(pos Position) Result[T] {
		return p(pos).OverwriteError(msg)
	}
}

// Left runs a then b and keeps the value of a.
func Left[T, U any](a Parser[T], b Parser[U]) Parser[T] {
	return Bind(a, func(v T) Parser[T] {
		return Const(b, v)
	})
}

// Right runs a then b and keeps the value of b.
func Right[T, U any](a Parser[T], b Parser[U]) Parser[U] {
	return Bind(a, func(T) Parser[U] { return b })
}

// Between parses open, p, close and keeps the value of p.
func Between[O, T, C any](open Parser[O], p Parser[T], close Parser[C]) Parser[T] {
	return Right(open, Left(p, close))
}

// Lazy defers building a parser until it first runs.
// Recursive grammar rules use it to refer to themselves.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	var once sync.Once
	var p Parser[T]
	return func(pos Position) Result[T] {
		once.Do(func() { p = build() })
		return p(pos)
	}
}
