package calc

import (
	"strings"
	"testing"
)

func TestGrammar(t *testing.T) {
	g, err := Grammar()
	if err != nil {
		t.Fatalf("Grammar: %v", err)
	}
	for _, name := range []string{"Expression", "Term", "Factor", "AddOp", "MulOp", "Integer", "digits", "digit"} {
		if g[name] == nil {
			t.Errorf("production %s missing", name)
		}
	}
}

func TestGrammarSource(t *testing.T) {
	if !strings.Contains(GrammarSource(), "Expression = Term { AddOp Term } .") {
		t.Errorf("GrammarSource() does not contain the start production:\n%s", GrammarSource())
	}
}
