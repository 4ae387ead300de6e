package calc

import (
	"fmt"
	"strconv"

	"github.com/dhamidi/kombi/parse"
	"github.com/tliron/commonlog"
)

// DefaultMaxDepth is the default limit on nested parentheses.
const DefaultMaxDepth = 256

const (
	msgFactor   = "expected integer or '('"
	msgAddOp    = "+ or - expected"
	msgMulOp    = "* or / expected"
	msgSign     = "- or digit expected"
	msgDigits   = "digit expected"
	msgRange    = "integer out of range"
	msgTrailing = "operator or end of input expected"
)

// Option configures the parsers built by this package.
type Option func(*grammar)

// WithMaxDepth limits how deeply parentheses may nest.
// Deeper input fails like any other syntax error.
func WithMaxDepth(n int) Option {
	return func(g *grammar) {
		g.maxDepth = n
	}
}

// WithLogger traces every grammar rule at debug level.
func WithLogger(log commonlog.Logger) Option {
	return func(g *grammar) {
		g.log = log
	}
}

type grammar struct {
	maxDepth int
	log      commonlog.Logger

	integer parse.Parser[int]
	addOp   parse.Parser[func(Node, Node) Node]
	mulOp   parse.Parser[func(Node, Node) Node]
}

func newGrammar(opts []Option) *grammar {
	g := &grammar{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(g)
	}

	g.integer = traced(g, "integer", Integer())
	g.addOp = traced(g, "addop", parse.ErrorText(parse.Choice(
		parse.Const(Symbol('+'), binary('+')),
		parse.Const(Symbol('-'), binary('-')),
	), msgAddOp))
	g.mulOp = traced(g, "mulop", parse.ErrorText(parse.Choice(
		parse.Const(Symbol('*'), binary('*')),
		parse.Const(Symbol('/'), binary('/')),
	), msgMulOp))
	return g
}

func traced[T any](g *grammar, name string, p parse.Parser[T]) parse.Parser[T] {
	if g.log == nil {
		return p
	}
	return parse.Trace(g.log, name, p)
}

func binary(op rune) func(Node, Node) Node {
	return func(l, r Node) Node {
		return Binary{Op: op, Left: l, Right: r}
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// Symbol matches r and any white space after it.
func Symbol(r rune) parse.Parser[rune] {
	return parse.ErrorText(parse.TrimRight(parse.Rune(r)), fmt.Sprintf("%c expected", r))
}

// Integer matches an optionally negative decimal integer and any white space
// after it.
func Integer() parse.Parser[int] {
	sign := parse.ErrorText(parse.Choice(
		parse.Const(Symbol('-'), func(digits string) string { return "-" + digits }),
		parse.Return(func(digits string) string { return digits }),
	), msgSign)

	digits := parse.ErrorText(parse.Map(parse.Many1(parse.Satisfy(isDigit)), parse.Runes), msgDigits)

	toInt := func(s string) parse.Parser[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return parse.Fail[int](msgRange)
		}
		return parse.Return(n)
	}

	return parse.TrimRight(parse.Bind(parse.Apply(sign, digits), toInt))
}

// expression builds the parser for one nesting level. Levels are built on
// first use, so only as many exist as the input needs.
func (g *grammar) expression(depth int) parse.Parser[Node] {
	return parse.Lazy(func() parse.Parser[Node] {
		term := traced(g, "term", parse.Chainl1(g.factor(depth), g.mulOp))
		return traced(g, "expression", parse.Chainl1(term, g.addOp))
	})
}

func (g *grammar) factor(depth int) parse.Parser[Node] {
	num := parse.Map(g.integer, func(n int) Node { return Num{Value: n} })

	var inner parse.Parser[Node]
	if depth >= g.maxDepth {
		inner = parse.Fail[Node](fmt.Sprintf("parentheses nested deeper than %d levels", g.maxDepth))
	} else {
		inner = g.expression(depth + 1)
	}
	open := parse.ErrorText(Symbol('('), msgFactor)
	parens := parse.Between(open, inner, Symbol(')'))

	return traced(g, "factor", parse.Choice(num, parens))
}

// end accepts the end of input. Input left over after an operator means the
// operand was missing or malformed, so that operand is parsed again to report
// why.
func (g *grammar) end() parse.Parser[parse.Unit] {
	op := parse.ErrorText(parse.Choice(g.addOp, g.mulOp), msgTrailing)
	dangling := parse.Bind(parse.Right(op, g.factor(0)), func(Node) parse.Parser[parse.Unit] {
		return parse.Fail[parse.Unit](msgTrailing)
	})
	return parse.Choice(parse.EndOfInput(), dangling)
}

// Expression parses an expression, skipping leading white space.
// It stops before the first input it cannot use.
func Expression(opts ...Option) parse.Parser[Node] {
	g := newGrammar(opts)
	return parse.TrimLeft(g.expression(0))
}

// Program parses an expression that must span the whole input.
func Program(opts ...Option) parse.Parser[Node] {
	g := newGrammar(opts)
	return parse.Left(parse.TrimLeft(g.expression(0)), g.end())
}

// Evaluator parses a whole input and evaluates it. Evaluation errors such
// as division by zero are reported as failures at the end of the input.
func Evaluator(opts ...Option) parse.Parser[int] {
	return parse.Bind(Program(opts...), func(n Node) parse.Parser[int] {
		v, err := Evaluate(n)
		if err != nil {
			return parse.Fail[int](err.Error())
		}
		return parse.Return(v)
	})
}

// Eval evaluates text. Failures are *parse.Error values.
func Eval(text string, opts ...Option) (int, error) {
	return parse.Run(Evaluator(opts...), text)
}
