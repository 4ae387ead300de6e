package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/dhamidi/kombi/calc"
	"github.com/dhamidi/kombi/parse"
	"github.com/eaburns/pretty"
	"github.com/spf13/cobra"
)

func newEvalCmd(a *app) *cobra.Command {
	var showAST bool

	cmd := &cobra.Command{
		Use:   "eval [expression...]",
		Short: "Evaluate expressions given as arguments or read from stdin",
		Long: `Evaluate every argument as an expression and print one value per line.
Without arguments each non-blank line of standard input is evaluated.

Evaluation stops at the first invalid expression.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			exprs := args
			if len(exprs) == 0 {
				var err error
				exprs, err = readLines(cmd)
				if err != nil {
					return err
				}
			}

			opts := a.calcOptions()
			program := calc.Program(opts...)
			eval := calc.Evaluator(opts...)
			out := cmd.OutOrStdout()

			for _, expr := range exprs {
				if showAST {
					if tree, err := parse.Run(program, expr); err == nil {
						fmt.Fprintln(out, pretty.String(tree))
					}
				}

				v, err := parse.Run(eval, expr)
				if err != nil {
					var perr *parse.Error
					if errors.As(err, &perr) {
						printFailure(cmd.ErrOrStderr(), a.cfg.Color, perr.Message, perr.Pos)
					}
					return fmt.Errorf("evaluate %q: %w", expr, err)
				}
				fmt.Fprintln(out, v)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showAST, "ast", false, "print the parse tree before each value")

	return cmd
}

func readLines(cmd *cobra.Command) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		if line := scanner.Text(); strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return lines, nil
}
