// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"strings"

	"bfk-cli/internal/interp"
	"bfk-cli/internal/issue"

	"github.com/spf13/cobra"
)

var (
	checkSrc programSource

	checkCmd = &cobra.Command{
		Use:   "check",
		Short: "Validate a program's loop brackets without executing it",
		Long: `Validate that every '[' in the program has a matching ']' and vice
versa. The program is sanitized first; reported positions are indices
into the sanitized form (use 'bfk sanitize' to see it).`,
		Example: `  bfk check -f program.bf
  bfk check -p "++[>+<-]"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkProgram(cmd); err != nil {
				cmd.SilenceErrors = true
				cmd.SilenceUsage = true
				return err
			}
			return nil
		},
	}
)

func init() {
	checkSrc.register(checkCmd)
}

func checkProgram(cmd *cobra.Command) error {
	text, resource, err := checkSrc.load()
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	program := interp.Sanitize(text)
	prog := interp.Tokenize(program)

	jumps, err := interp.MatchBrackets(prog)
	if err != nil {
		pos := -1
		var openErr *interp.UnmatchedOpenError
		var closeErr *interp.UnmatchedCloseError
		switch {
		case errors.As(err, &openErr):
			pos = openErr.Pos
		case errors.As(err, &closeErr):
			pos = closeErr.Pos
		}
		fmt.Fprintln(cmd.ErrOrStderr(), positionDiagnostic(program, pos, err))
		renderIssue(issue.UnbalancedProgramId)
		return &ExitError{Code: 1, Err: issue.NewErrorContext().
			WithOperation("validate program").
			WithResource(resource).
			Wrap(err).
			BuildError()}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n",
		SuccessStyle.Render("✓ balanced:"),
		fmt.Sprintf("%d commands, %d loop pairs", len(prog), len(jumps)/2))
	return nil
}

// positionDiagnostic renders the sanitized program with a caret under the
// offending position. Long programs are windowed around the position so the
// caret stays visible.
func positionDiagnostic(program string, pos int, err error) string {
	const window = 60

	start := 0
	if pos > window {
		start = pos - window/2
	}
	end := min(len(program), start+window)
	excerpt := program[start:end]

	var sb strings.Builder
	sb.WriteString("  ")
	sb.WriteString(CmdStyle.Render(excerpt))
	if pos >= start && pos < end {
		sb.WriteString("\n  ")
		sb.WriteString(strings.Repeat(" ", pos-start))
		sb.WriteString(ErrorStyle.Render("^ " + err.Error()))
	} else {
		sb.WriteString("\n  ")
		sb.WriteString(ErrorStyle.Render(err.Error()))
	}
	return sb.String()
}
