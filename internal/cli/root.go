// Package cli provides the command-line interface for semisim.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/edp1096/semisim/internal/config"
	"github.com/edp1096/semisim/pkg/curve"
	"github.com/edp1096/semisim/pkg/device"
	"github.com/edp1096/semisim/pkg/netlist"
	"github.com/edp1096/semisim/pkg/util"
)

// Version is set at build time.
var Version = "0.1.0"

// app carries what every subcommand needs once the root has loaded it.
type app struct {
	stdout io.Writer
	stderr io.Writer

	// Global flags
	configPath string
	format     string
	out        string
	verbose    bool

	cfg      *config.Config
	logger   *slog.Logger
	closeLog func() error
}

// usageError marks bad flags or arguments.
type usageError struct{ error }

func (e usageError) Unwrap() error { return e.error }

func NewRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	rootCmd := &cobra.Command{
		Use:   "semisim",
		Short: "Analytic semiconductor device characteristic curves",
		Long: `semisim computes I-V and band-gap curves for a PN junction diode,
a BJT, a JFET and a quantum-confined nanoparticle from closed-form models.

Curves can be printed, exported as images or HTML charts, computed in bulk
from a deck file, or explored in a local web form.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.closeLog != nil {
				if err := a.closeLog(); err != nil {
					fmt.Fprintf(a.stderr, "Warning: failed to close log file: %v\n", err)
				}
			}
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError{err}
	})

	// Global flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "config file (default "+config.DefaultPath+" when present)")
	pf.StringVarP(&a.format, "format", "f", "", "output format: table, json, png, svg, pdf, html")
	pf.StringVarP(&a.out, "out", "o", "", "output file (stdout when empty)")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	// Add subcommands
	rootCmd.AddCommand(newDiodeCmd(a))
	rootCmd.AddCommand(newBJTCmd(a))
	rootCmd.AddCommand(newJFETCmd(a))
	rootCmd.AddCommand(newNanoCmd(a))
	rootCmd.AddCommand(newRunCmd(a))
	rootCmd.AddCommand(newServeCmd(a))

	return rootCmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	a.cfg = cfg

	if !cmd.Flags().Changed("format") {
		a.format = cfg.Format
	}
	if err := checkFormat(a.format); err != nil {
		return usageError{err}
	}

	level := cfg.Level()
	if a.verbose {
		level = slog.LevelDebug
	}
	a.logger, a.closeLog = config.SetupLogger(a.stderr, cfg.LogFile, level)
	return nil
}

// Execute runs the root command and returns the process exit code.
func Execute() int {
	err := NewRootCmd(os.Stdout, os.Stderr).Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return ExitCode(err)
}

// ExitCode maps an error to 0 on success, 2 for bad input and 1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var (
		listErr  *util.ParseError
		deckErr  *netlist.ParseError
		usageErr usageError
	)
	switch {
	case device.IsInputError(err),
		errors.Is(err, curve.ErrInvalidSweep),
		errors.As(err, &listErr),
		errors.As(err, &deckErr),
		errors.As(err, &usageErr):
		return 2
	}
	return 1
}
