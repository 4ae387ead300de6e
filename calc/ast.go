package calc

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrDivisionByZero is returned when a divisor evaluates to zero.
var ErrDivisionByZero = errors.New("division by zero")

// Node is a node of the expression tree.
type Node interface {
	String() string
	node()
}

// Num is an integer literal.
type Num struct {
	Value int
}

// Binary is an operator applied to two operands.
type Binary struct {
	Op    rune
	Left  Node
	Right Node
}

func (Num) node()    {}
func (Binary) node() {}

func (n Num) String() string { return strconv.Itoa(n.Value) }

func (b Binary) String() string {
	return fmt.Sprintf("(%s %c %s)", b.Left, b.Op, b.Right)
}

// Evaluate computes the value of n. Division truncates toward zero.
func Evaluate(n Node) (int, error) {
	switch n := n.(type) {
	case Num:
		return n.Value, nil
	case Binary:
		l, err := Evaluate(n.Left)
		if err != nil {
			return 0, err
		}
		r, err := Evaluate(n.Right)
		if err != nil {
			return 0, err
		}
		switch n.Op {
		case '+':
			return l + r, nil
		case '-':
			return l - r, nil
		case '*':
			return l * r, nil
		case '/':
			if r == 0 {
				return 0, ErrDivisionByZero
			}
			return l / r, nil
		}
		return 0, fmt.Errorf("unknown operator %q", n.Op)
	}
	return 0, fmt.Errorf("unknown node %T", n)
}
