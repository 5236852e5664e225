// Package cmd implements the commands of the motr driver.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/crillab/motr/calculus"
	"github.com/crillab/motr/internal/config"
	"github.com/crillab/motr/internal/pipeline"
)

// app holds the state shared by all commands.
type app struct {
	cfg    config.Config
	syms   calculus.Symbols
	logger *zap.Logger

	// flags
	symbols    string
	format     string
	noSimplify bool
	verbose    bool
	noColor    bool
}

var header = color.New(color.FgCyan, color.Bold)

// NewRootCmd creates the motr command and all its subcommands.
func NewRootCmd() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "motr",
		Short: "motr - converts feature-diagram constraints to CNF",
		Long: `Reads propositional constraints, one per line or separated by ';', and
converts their conjunction to conjunctive normal form.

Constraints use the operators ~, &, |, <> (xor), => and <=>.
Files are read from the arguments, or from the standard input when there is none.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.symbols, "symbols", "", "Symbol set used to print formulas (symbolic|written)")
	flags.StringVar(&a.format, "format", "", "Output format (text|yaml)")
	flags.BoolVar(&a.noSimplify, "no-simplify", false, "Do not fold constants before converting to CNF")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Log each conversion step")
	flags.BoolVar(&a.noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(
		a.printCmd(),
		a.atomsCmd(),
		a.cnfCmd(),
		a.mapCmd(),
		a.dimacsCmd(),
		a.solveCmd(),
	)
	return rootCmd
}

// Execute runs the motr command with the arguments of the process.
func Execute() error {
	return NewRootCmd().Execute()
}

// setup loads the configuration, overrides it with flags and creates the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("symbols") {
		cfg.Symbols = a.symbols
	}
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("no-simplify") {
		cfg.Simplify = !a.noSimplify
	}
	if flags.Changed("verbose") {
		cfg.Verbose = a.verbose
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg
	a.syms, _ = cfg.SymbolSet()
	if a.noColor {
		color.NoColor = true
	}
	a.logger = zap.NewNop()
	if cfg.Verbose {
		if a.logger, err = zap.NewDevelopment(); err != nil {
			return fmt.Errorf("could not create logger: %w", err)
		}
	}
	return nil
}

// readConstraints parses the constraints of all given files, or of the
// standard input if no file is given or for the "-" file.
func (a *app) readConstraints(cmd *cobra.Command, paths []string) ([]calculus.Formula, error) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	var res []calculus.Formula
	for _, path := range paths {
		fs, err := a.readFile(cmd, path)
		if err != nil {
			return nil, err
		}
		a.logger.Debug("Read constraints", zap.String("path", path), zap.Int("count", len(fs)))
		res = append(res, fs...)
	}
	return res, nil
}

func (a *app) readFile(cmd *cobra.Command, path string) ([]calculus.Formula, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %q: %v", path, err)
		}
		defer f.Close()
		r = f
	}
	fs, err := calculus.ParseAll(r)
	if err != nil {
		return nil, fmt.Errorf("could not parse constraints in %q: %v", path, err)
	}
	return fs, nil
}

// run reads the constraints and runs the pipeline over them.
func (a *app) run(cmd *cobra.Command, paths []string) (*pipeline.Result, error) {
	constraints, err := a.readConstraints(cmd, paths)
	if err != nil {
		return nil, err
	}
	return pipeline.Run(constraints, pipeline.Options{
		Simplify: a.cfg.Simplify,
		Logger:   a.logger,
	})
}

// show prints f with the configured symbols.
func (a *app) show(f calculus.Formula) string {
	return calculus.Format(f, a.syms)
}

// writeYAML writes v as a YAML document on w.
func writeYAML(w io.Writer, v any) error {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not marshal output: %w", err)
	}
	_, err = w.Write(b)
	return err
}
