package parse

import (
	"github.com/tliron/commonlog"
)

// Trace logs every run of p at debug level under name, with the column it
// started at and how it ended. It does not change the result.
func Trace[T any](log commonlog.Logger, name string, p Parser[T]) Parser[T] {
	return func(pos Position) Result[T] {
		log.Debugf("%s: enter at %s", name, pos)
		r := p(pos)
		Match(r,
			func(_ T, rest Position) Unit {
				log.Debugf("%s: matched %s..%s", name, pos, rest)
				return Unit{}
			},
			func(msg string, at Position) Unit {
				log.Debugf("%s: failed at %s: %s", name, at, msg)
				return Unit{}
			})
		return r
	}
}
