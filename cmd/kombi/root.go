package main

import (
	"fmt"

	"github.com/dhamidi/kombi/calc"
	"github.com/dhamidi/kombi/config"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

const version = "0.1.0"

// app carries the settings shared by all subcommands.
type app struct {
	configPath string
	cfg        config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default()}

	var (
		verbosity int
		logFile   string
		maxDepth  int
		noColor   bool
	)

	rootCmd := &cobra.Command{
		Use:     "kombi",
		Short:   "Evaluate integer arithmetic with parser combinators",
		Version: version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRepl(cmd)
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.loadConfig(); err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("verbose") {
				a.cfg.Verbosity = verbosity
			}
			if flags.Changed("log-file") {
				a.cfg.LogFile = logFile
			}
			if flags.Changed("max-depth") {
				a.cfg.MaxDepth = maxDepth
			}
			if noColor {
				a.cfg.Color = false
			}
			if err := a.cfg.Validate(); err != nil {
				return fmt.Errorf("invalid settings: %w", err)
			}

			a.configureLogging()
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default $KOMBI_CONFIG or <user config dir>/kombi/config.toml)")
	pf.IntVarP(&verbosity, "verbose", "v", 0, "log verbosity (-4 silent, 2 debug)")
	pf.StringVar(&logFile, "log-file", "", "write logs to this file instead of stderr")
	pf.IntVar(&maxDepth, "max-depth", calc.DefaultMaxDepth, "maximum nesting of parentheses")
	pf.BoolVar(&noColor, "no-color", false, "disable colored output")

	rootCmd.AddCommand(newReplCmd(a))
	rootCmd.AddCommand(newEvalCmd(a))
	rootCmd.AddCommand(newGrammarCmd())
	rootCmd.AddCommand(newLSPCmd(a))

	return rootCmd
}

func (a *app) loadConfig() error {
	var err error
	if a.configPath != "" {
		a.cfg, err = config.Load(a.configPath)
	} else {
		a.cfg, err = config.LoadDefault()
	}
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	return nil
}

func (a *app) configureLogging() {
	var path *string
	if a.cfg.LogFile != "" {
		path = &a.cfg.LogFile
	}
	commonlog.Configure(a.cfg.Verbosity, path)
}

// calcOptions translates the settings into grammar options.
// Grammar rules are traced once debug logging is on.
func (a *app) calcOptions() []calc.Option {
	opts := []calc.Option{calc.WithMaxDepth(a.cfg.MaxDepth)}
	if a.cfg.Verbosity >= 2 {
		opts = append(opts, calc.WithLogger(commonlog.GetLogger("kombi.calc")))
	}
	return opts
}
