package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/dhamidi/kombi/calc"
	"github.com/dhamidi/kombi/parse"
	"github.com/spf13/cobra"
)

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read expressions line by line and print their values",
		Long: `Read expressions line by line and print their values.

Errors are shown with a caret under the failing column and do not end the
session. An empty line or end of input ends it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRepl(cmd)
		},
	}
}

func (a *app) runRepl(cmd *cobra.Command) error {
	eval := calc.Evaluator(a.calcOptions()...)
	return repl(cmd.InOrStdin(), cmd.OutOrStdout(), a.cfg.Prompt, a.cfg.Color, eval)
}

func repl(in io.Reader, out io.Writer, prompt string, color bool, eval parse.Parser[int]) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("read input: %w", err)
			}
			return nil
		}

		line := scanner.Text()
		if line == "" {
			return nil
		}

		parse.TryParse(eval, line,
			func(v int) parse.Unit {
				fmt.Fprintln(out, v)
				return parse.Unit{}
			},
			func(msg string, pos parse.Position) parse.Unit {
				printFailure(out, color, msg, pos)
				return parse.Unit{}
			})
	}
}
