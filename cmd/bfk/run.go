// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"bfk-cli/internal/config"
	"bfk-cli/internal/interp"
	"bfk-cli/internal/issue"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	runSrc        programSource
	runInput      string
	runTapeSize   int
	runMaxSteps   int
	runNoSanitize bool

	runCmd = &cobra.Command{
		Use:   "run",
		Short: "Execute a program and print its output",
		Long: `Execute a Brainfuck program and print the produced output to stdout.

The program may come from a file (-f) or be passed inline (-p); anything
outside the +-<>[],. alphabet is stripped first, so programs pasted with
HTML comments or prose work as-is. Input for ',' instructions comes from
the -i flag and is consumed byte by byte; once exhausted, ',' writes 0.

Failure is all-or-nothing: when the step budget is exceeded or the
program's loops are unbalanced, nothing is printed and the exit status
is non-zero.`,
		Example: `  bfk run -p ",[.,]" -i "hello"
  bfk run -f program.bf --tape-size 65536 --max-steps 5000000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runProgram(cmd); err != nil {
				// Runtime failure, not a usage problem.
				cmd.SilenceErrors = true
				cmd.SilenceUsage = true
				return err
			}
			return nil
		},
	}
)

func init() {
	runSrc.register(runCmd)
	runCmd.Flags().StringVarP(&runInput, "input", "i", "", "input consumed by ',' instructions")
	runCmd.Flags().IntVar(&runTapeSize, "tape-size", 0, "tape length in cells (default from config)")
	runCmd.Flags().IntVar(&runMaxSteps, "max-steps", 0, "executed-instruction budget (default from config)")
	runCmd.Flags().BoolVar(&runNoSanitize, "no-sanitize", false, "skip the explicit pre-sanitization pass")
}

func runProgram(cmd *cobra.Command) error {
	text, resource, err := runSrc.load()
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	cfg := effectiveConfig()
	tapeSize := cfg.TapeSize
	maxSteps := cfg.MaxSteps
	if cmd.Flags().Changed("tape-size") {
		tapeSize = runTapeSize
	}
	if cmd.Flags().Changed("max-steps") {
		maxSteps = runMaxSteps
	}

	program := text
	if !runNoSanitize {
		program = interp.Sanitize(text)
	}

	logger := newLogger()
	logger.Debug("program loaded",
		"source", resource,
		"raw_bytes", len(text),
		"commands", len(interp.Sanitize(text)),
		"tape_size", tapeSize,
		"max_steps", maxSteps)

	engine, err := interp.New(tapeSize, maxSteps)
	if err != nil {
		return &ExitError{Code: 1, Err: issue.NewErrorContext().
			WithOperation("configure interpreter").
			WithSuggestion("tape size must be a positive number of cells").
			Wrap(err).
			BuildError()}
	}

	start := time.Now()
	out, err := engine.Run(cmd.Context(), program, runInput)
	if err != nil {
		return runFailure(err, resource)
	}
	logger.Debug("run complete", "duration", time.Since(start), "output_bytes", len(out))

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}

// runFailure classifies an engine error, prints the matching guidance card,
// and wraps the error for a non-zero exit.
func runFailure(err error, resource string) error {
	switch {
	case errors.Is(err, interp.ErrUnmatchedOpen), errors.Is(err, interp.ErrUnmatchedClose):
		renderIssue(issue.UnbalancedProgramId)
	case errors.Is(err, interp.ErrStepLimit):
		renderIssue(issue.StepLimitExceededId)
	}

	return &ExitError{Code: 1, Err: issue.NewErrorContext().
		WithOperation("run program").
		WithResource(resource).
		Wrap(err).
		BuildError()}
}

// effectiveConfig loads the configuration, falling back to defaults when
// loading fails (the warning was already printed by initRootConfig).
func effectiveConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil || cfg == nil {
		return config.DefaultConfig()
	}
	return cfg
}

// newLogger builds the diagnostic logger for the current verbosity.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "bfk",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// glamourStyle maps the configured color scheme to a glamour style path.
func glamourStyle() string {
	if cfg := effectiveConfig(); cfg.UI.ColorScheme == config.ColorSchemeLight {
		return "light"
	}
	return "dark"
}
