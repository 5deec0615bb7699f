package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/martimartins/carbon-lang/colors"
	"github.com/martimartins/carbon-lang/internal/config"
	"github.com/martimartins/carbon-lang/internal/diagnostics"
	"github.com/martimartins/carbon-lang/internal/frontend/ast"
	"github.com/martimartins/carbon-lang/internal/semantics/controlflow"
)

var (
	flagFormat string
	flagOutput string
)

var checkCmd = &cobra.Command{
	Use:   "check <program.ast.json>",
	Short: "Resolve control-flow edges of a pre-parsed program",
	Long: `Loads a serialized program AST, binds every return statement to its
enclosing function and every break/continue to its innermost loop, and
reports the first control-flow violation found.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if flagFormat != "" {
			cfg.Format = flagFormat
		}
		if flagOutput != "" {
			cfg.SARIFOutput = flagOutput
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if cfg.NoColor {
			colors.Enabled = false
		}

		return runCheck(args[0], cfg)
	},
}

func init() {
	checkCmd.Flags().StringVarP(&flagFormat, "format", "f", "", "output format: pretty or sarif (overrides config)")
	checkCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "SARIF output file (default stdout)")
	RootCmd.AddCommand(checkCmd)
}

func runCheck(path string, cfg *config.Config) error {
	program, err := ast.LoadProgram(path)
	if err != nil {
		return err
	}

	bag := diagnostics.NewDiagnosticBag()

	resolveErr := controlflow.ResolveProgram(program)
	if resolveErr != nil {
		var ce *diagnostics.CompileError
		if !errors.As(resolveErr, &ce) {
			return resolveErr
		}
		bag.Add(ce.Diag)
	}

	if err := report(bag, cfg); err != nil {
		return err
	}

	if bag.HasErrors() {
		// Diagnostics already rendered; exit nonzero without cobra noise
		os.Exit(1)
	}

	colors.GREEN.Printf("resolved %d declaration(s)\n", len(program.Decls))
	return nil
}

func report(bag *diagnostics.DiagnosticBag, cfg *config.Config) error {
	switch cfg.Format {
	case config.FormatSARIF:
		out := os.Stdout
		if cfg.SARIFOutput != "" && cfg.SARIFOutput != "-" {
			f, err := os.Create(cfg.SARIFOutput)
			if err != nil {
				return fmt.Errorf("failed to create SARIF output: %w", err)
			}
			defer f.Close()
			out = f
		}
		return bag.WriteSARIF(out, "carbonc")
	default:
		bag.EmitAll()
		return nil
	}
}
