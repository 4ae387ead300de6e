package calc

import (
	"bytes"
	_ "embed"
	"fmt"

	"golang.org/x/exp/ebnf"
)

// StartProduction is the root production of the EBNF grammar.
const StartProduction = "Expression"

//go:embed grammar.ebnf
var grammarSource []byte

// GrammarSource returns the EBNF text describing the language parsed by
// Expression.
func GrammarSource() string {
	return string(grammarSource)
}

// Grammar parses the embedded EBNF description and verifies that every
// production is defined and reachable from StartProduction.
func Grammar() (ebnf.Grammar, error) {
	g, err := ebnf.Parse("grammar.ebnf", bytes.NewReader(grammarSource))
	if err != nil {
		return nil, fmt.Errorf("parse grammar: %w", err)
	}
	if err := ebnf.Verify(g, StartProduction); err != nil {
		return nil, fmt.Errorf("verify grammar: %w", err)
	}
	return g, nil
}
