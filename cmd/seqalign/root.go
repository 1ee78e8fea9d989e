// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/internal/config"
	"github.com/katalvlaran/seqalign/internal/report"
	"github.com/katalvlaran/seqalign/penalty"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

// Process exit codes.
const (
	ExitSuccess = 0
	ExitError   = 1 // I/O failure or unimplemented algorithm
	ExitUsage   = 2 // bad flags, arguments or parameters
)

// usageError marks failures caused by how the command was invoked.
type usageError struct{ err error }

func (e usageError) Error() string { return e.err.Error() }
func (e usageError) Unwrap() error { return e.err }

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	fmt.Fprintf(stderr, "seqalign: %v\n", err)
	var usage usageError
	switch {
	case errors.As(err, &usage),
		errors.Is(err, align.ErrParameter),
		errors.Is(err, align.ErrUnknownAlgorithm),
		errors.Is(err, report.ErrUnknownFormat),
		errors.Is(err, config.ErrInvalid):
		return ExitUsage
	}

	return ExitError
}

// newRootCmd builds the seqalign command writing to the given streams.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var configFile string

	cmd := &cobra.Command{
		Use:   "seqalign [flags] <first-sequence> <second-sequence>",
		Short: "Pairwise sequence alignment (Needleman-Wunsch, Smith-Waterman, Gotoh)",
		Long: `seqalign computes an optimal alignment of two sequences.

Methods:
  NW  Needleman-Wunsch, global, linear gaps
  SW  Smith-Waterman, local, linear gaps
  GG  Gotoh, global, affine gaps
  GL  Gotoh, local, affine gaps
  AE  Altschul-Erickson (not implemented)

Settings are read from defaults, a config file, SEQALIGN_* environment
variables and flags, each overriding the previous one.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.ExactArgs(2)(cmd, args); err != nil {
				return usageError{err}
			}

			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile, cmd.Flags())
			if err != nil {
				return err
			}

			return alignAndReport(cfg, args[0], args[1], stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageError{err}
	})

	f := cmd.Flags()
	f.StringP("method", "m", string(align.NW), "alignment method: "+methodList())
	f.Int("match", penalty.DefaultMatch, "score for matching symbols")
	f.Int("mismatch", penalty.DefaultMismatch, "score for different symbols")
	f.Int("indel", penalty.DefaultIndel, "score for a gap position (gap extension in GG/GL)")
	f.Int("gap-opening", penalty.DefaultIndel, "score for opening a gap in GG/GL (default: --indel)")
	f.StringP("output", "o", "", "write the result to this file instead of stdout")
	f.StringP("format", "f", string(report.CSV), "output format: csv, json, yaml or pretty")
	f.IntP("workers", "w", align.DefaultWorkers, "goroutines used to fill the score matrix")
	f.BoolP("verbose", "v", false, "log debug details to stderr")
	f.StringVar(&configFile, "config", "", "config file (toml, yaml or json)")

	return cmd
}

// methodList joins the selectable method codes for help text.
func methodList() string {
	methods := align.Methods()
	codes := make([]string, len(methods))
	for i, m := range methods {
		codes[i] = string(m)
	}

	return strings.Join(codes, ", ")
}

// alignAndReport runs one alignment described by cfg and writes its report.
func alignAndReport(cfg config.Config, a, b string, stdout, stderr io.Writer) error {
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	method, err := align.ParseMethod(cfg.Method)
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	penalties := cfg.Penalties.Penalty()
	model, err := penalties.Normalize()
	if err != nil {
		return fmt.Errorf("%w: %w", align.ErrParameter, err)
	}

	res, err := align.Align(a, b, method, &penalties,
		align.WithConcurrency(cfg.Workers),
		align.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	rec := report.Record{
		Method:    method.Description(),
		Penalties: model,
		Score:     res.Score,
		AlignedA:  res.AlignedA,
		AlignedB:  res.AlignedB,
	}

	if cfg.Output.Path == "" {
		return report.Write(stdout, format, rec, isTerminal(stdout))
	}

	out, err := os.Create(cfg.Output.Path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err = report.Write(out, format, rec, false); err != nil {
		_ = out.Close()

		return fmt.Errorf("write output: %w", err)
	}
	if err = out.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	logger.Debug("result written", slog.String("path", cfg.Output.Path), slog.String("format", string(format)))

	return nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
