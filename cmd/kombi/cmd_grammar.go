package main

import (
	"fmt"
	"sort"

	"github.com/dhamidi/kombi/calc"
	"github.com/spf13/cobra"
)

func newGrammarCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print the EBNF grammar of the expression language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), calc.GrammarSource())
			return nil
		},
	}

	cmd.AddCommand(newGrammarCheckCmd())

	return cmd
}

func newGrammarCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "check",
		Short:        "Parse and verify the EBNF grammar",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := calc.Grammar()
			if err != nil {
				return err
			}

			names := make([]string, 0, len(g))
			for name := range g {
				names = append(names, name)
			}
			sort.Strings(names)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "grammar ok: %d productions from %s\n", len(names), calc.StartProduction)
			for _, name := range names {
				fmt.Fprintf(out, "  %s\n", name)
			}
			return nil
		},
	}
}
