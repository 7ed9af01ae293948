package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"go.shiryu.dev/internal/config"
	"go.shiryu.dev/pkg"
)

var logLevels = map[string]pterm.LogLevel{
	"disabled": pterm.LogLevelDisabled,
	"trace":    pterm.LogLevelTrace,
	"debug":    pterm.LogLevelDebug,
	"info":     pterm.LogLevelInfo,
	"warn":     pterm.LogLevelWarn,
	"error":    pterm.LogLevelError,
}

type app struct {
	out io.Writer

	configPath string
	format     string
	logLevel   string

	cfg      *config.Config
	compiler *shiryu.Compiler
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:               "shiryu",
		Short:             "Shiryu language front end",
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "path to a shiryu.toml or shiryu.yaml file")
	root.PersistentFlags().StringVarP(&a.format, "format", "f", "", "tree output format (pretty, json, yaml, source)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (disabled, trace, debug, info, warn, error)")

	root.AddCommand(
		&cobra.Command{
			Use:   "tokens FILE",
			Short: "Print the tokens of a source file",
			Args:  cobra.ExactArgs(1),
			RunE:  a.runTokens,
		},
		&cobra.Command{
			Use:   "parse FILE...",
			Short: "Parse source files and print their syntax trees",
			Args:  cobra.MinimumNArgs(1),
			RunE:  a.runParse,
		},
		&cobra.Command{
			Use:   "fmt FILE",
			Short: "Print a source file in canonical form",
			Args:  cobra.ExactArgs(1),
			RunE:  a.runFmt,
		},
	)

	return root
}

// setup resolves the configuration: defaults, then the config file, then flags.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	if a.format != "" {
		cfg.Output.Format = a.format
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := pterm.DefaultLogger.
		WithLevel(logLevels[cfg.Log.Level]).
		WithWriter(cmd.ErrOrStderr())

	a.cfg = cfg
	a.compiler = shiryu.NewCompiler(shiryu.WithLogger(logger))

	return nil
}

func (a *app) runTokens(_ *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	tokens, err := shiryu.Lex(string(source))
	if err != nil {
		return fmt.Errorf("%s:%w", args[0], err)
	}

	return writeTokens(a.out, tokens)
}

func (a *app) runParse(cmd *cobra.Command, args []string) error {
	trees, err := a.compiler.CompileFiles(cmd.Context(), args...)
	if err != nil {
		return err
	}

	for i, tree := range trees {
		if len(trees) > 1 {
			fmt.Fprintf(a.out, "# %s\n", args[i])
		}

		if err := render(a.out, a.cfg.Output.Format, tree); err != nil {
			return err
		}
	}

	return nil
}

func (a *app) runFmt(_ *cobra.Command, args []string) error {
	tree, err := a.compiler.Compile(args[0])
	if err != nil {
		return err
	}

	return shiryu.Format(a.out, tree)
}
