// Package calc parses and evaluates integer arithmetic expressions.
//
// # Grammar
//
//	expr   ::= expr addop term | term
//	term   ::= term mulop factor | factor
//	factor ::= int | "(" expr ")"
//	int    ::= "-" digits | digits
//	addop  ::= "+" | "-"
//	mulop  ::= "*" | "/"
//
// The left-recursive rules are expressed with parse.Chainl1, which keeps
// "8 - 3 - 2" left associative. Precedence comes from the layering of
// expr, term and factor. White space is allowed before the expression and
// after every token.
//
// The same grammar in EBNF is embedded as grammar.ebnf and can be checked
// with Grammar.
//
// # Usage
//
//	v, err := calc.Eval("(5 + 5) * 5")
//	// v == 50
//
//	n, err := parse.Run(calc.Expression(), "1 + 2 * 3")
//	// n is the parse tree, calc.Evaluate(n) == 7
//
// Failures are *parse.Error values; Pretty renders them with a caret under
// the failing column.
package calc
