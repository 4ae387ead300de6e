package parse

// Result is the outcome of running a parser: either a success carrying the
// parsed value and the position after it, or a failure carrying a message and
// the position where matching diverged.
type Result[T any] struct {
	ok    bool
	value T
	msg   string
	pos   Position
}

// Success builds a successful result.
func Success[T any](value T, rest Position) Result[T] {
	return Result[T]{ok: true, value: value, pos: rest}
}

// Failure builds a failed result.
func Failure[T any](msg string, at Position) Result[T] {
	return Result[T]{msg: msg, pos: at}
}

// Match eliminates a Result by calling exactly one of the two handlers.
// Every other operation on Result is defined through it.
func Match[T, R any](r Result[T], onSuccess func(T, Position) R, onFailure func(string, Position) R) R {
	if r.ok {
		return onSuccess(r.value, r.pos)
	}
	return onFailure(r.msg, r.pos)
}

// MapResult applies f to the value of a success and leaves failures alone.
func MapResult[T, U any](r Result[T], f func(T) U) Result[U] {
	return Match(r,
		func(v T, rest Position) Result[U] { return Success(f(v), rest) },
		Failure[U])
}

// BindResult hands the value and remaining position of a success to f and
// returns whatever f produces. Failures propagate unchanged.
func BindResult[T, U any](r Result[T], f func(T, Position) Result[U]) Result[U] {
	return Match(r, f, Failure[U])
}

// OverwriteError replaces the message of a failure, keeping its position.
func (r Result[T]) OverwriteError(msg string) Result[T] {
	return Match(r,
		Success[T],
		func(_ string, at Position) Result[T] { return Failure[T](msg, at) })
}

// OK reports whether the result is a success.
func (r Result[T]) OK() bool {
	return Match(r,
		func(T, Position) bool { return true },
		func(string, Position) bool { return false })
}

// Value returns the parsed value; it is the zero value for failures.
func (r Result[T]) Value() T { return r.value }

// Rest returns the position after the parsed value for a success and the
// failure position otherwise.
func (r Result[T]) Rest() Position { return r.pos }

// Message returns the failure message, empty for successes.
func (r Result[T]) Message() string { return r.msg }

// Pos is an alias of Rest that reads better for failures.
func (r Result[T]) Pos() Position { return r.pos }
