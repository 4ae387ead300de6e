package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dhamidi/kombi/calc"
	"github.com/dhamidi/kombi/config"
	"github.com/dhamidi/kombi/parse"
	"github.com/google/go-cmp/cmp"
)

func TestRepl(t *testing.T) {
	in := strings.NewReader("42\n(5 + 5) * 5\n5 +\n1 + 1\n\nnot read\n")
	var out bytes.Buffer

	if err := repl(in, &out, "> ", false, calc.Evaluator()); err != nil {
		t.Fatalf("repl: %v", err)
	}

	want := "> 42\n" +
		"> 50\n" +
		"> 5 +\n   ^ expected integer or '('\n" +
		"> 2\n" +
		"> "
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestRepl_EndOfInput(t *testing.T) {
	var out bytes.Buffer
	if err := repl(strings.NewReader("7"), &out, "calc> ", false, calc.Evaluator()); err != nil {
		t.Fatalf("repl: %v", err)
	}
	if got, want := out.String(), "calc> 7\ncalc> \n"; got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func runKombi(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv(config.EnvConfig, filepath.Join(t.TempDir(), "none.toml"))

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(append([]string{"--no-color", "--verbose=-4"}, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestEvalCmd_Args(t *testing.T) {
	out, _, err := runKombi(t, "", "eval", "4 + 6", "5 + 5 * 5")
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if out != "10\n30\n" {
		t.Errorf("output = %q", out)
	}
}

func TestEvalCmd_Stdin(t *testing.T) {
	out, _, err := runKombi(t, "1 + 2\n\n  \n8 - 3 - 2\n", "eval")
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if out != "3\n3\n" {
		t.Errorf("output = %q", out)
	}
}

func TestEvalCmd_Failure(t *testing.T) {
	out, errOut, err := runKombi(t, "", "eval", "1", "5 +", "2")
	if err == nil {
		t.Fatalf("eval succeeded on invalid input")
	}
	if out != "1\n" {
		t.Errorf("output = %q, want only the first value", out)
	}
	if !strings.Contains(errOut, "^ expected integer or '('") {
		t.Errorf("stderr does not show the caret display:\n%s", errOut)
	}
}

func TestEvalCmd_AST(t *testing.T) {
	out, _, err := runKombi(t, "", "eval", "--ast", "1 + 2")
	if err != nil {
		t.Fatalf("eval: %v", err)
	}
	if !strings.HasSuffix(out, "\n3\n") || strings.TrimSuffix(out, "3\n") == "" {
		t.Errorf("output = %q", out)
	}
}

func TestEvalCmd_MaxDepth(t *testing.T) {
	if _, _, err := runKombi(t, "", "--max-depth", "1", "eval", "((1))"); err == nil {
		t.Errorf("eval accepted nesting beyond --max-depth")
	}
}

func TestRootRunsRepl(t *testing.T) {
	out, _, err := runKombi(t, "6 / 3\n")
	if err != nil {
		t.Fatalf("kombi: %v", err)
	}
	if !strings.Contains(out, "> 2\n") {
		t.Errorf("output = %q", out)
	}
}

func TestGrammarCmd(t *testing.T) {
	out, _, err := runKombi(t, "", "grammar")
	if err != nil {
		t.Fatalf("grammar: %v", err)
	}
	if out != calc.GrammarSource() {
		t.Errorf("grammar output differs from the embedded source")
	}

	out, _, err = runKombi(t, "", "grammar", "check")
	if err != nil {
		t.Fatalf("grammar check: %v", err)
	}
	if !strings.HasPrefix(out, "grammar ok: 8 productions from Expression\n") {
		t.Errorf("output = %q", out)
	}
}

func TestPrintFailure(t *testing.T) {
	var buf bytes.Buffer
	pos := parse.Start("5 +").Next().Next().Next()
	printFailure(&buf, true, "boom", pos)
	if !strings.Contains(buf.String(), "^ boom") {
		t.Errorf("colored output lost the message: %q", buf.String())
	}
}
