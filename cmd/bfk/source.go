// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"bfk-cli/internal/issue"

	"github.com/spf13/cobra"
)

// programSource resolves the program text for commands that accept either a
// source file (-f) or an inline program (-p). Exactly one must be given;
// cobra enforces the exclusivity and the one-required rule.
type programSource struct {
	file   string
	inline string
}

// register adds the -f/--file and -p/--program flags to cmd.
func (s *programSource) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&s.file, "file", "f", "", "path to a Brainfuck source file")
	cmd.Flags().StringVarP(&s.inline, "program", "p", "", "program text (surrounding noise allowed)")
	cmd.MarkFlagsMutuallyExclusive("file", "program")
	cmd.MarkFlagsOneRequired("file", "program")
}

// load returns the raw program text and a short resource label for
// diagnostics ("inline" or the file path).
func (s *programSource) load() (text, resource string, err error) {
	if s.file == "" {
		return s.inline, "inline", nil
	}

	data, readErr := os.ReadFile(s.file)
	if readErr != nil {
		renderIssue(issue.ProgramNotFoundId)
		return "", s.file, issue.NewErrorContext().
			WithOperation("load program").
			WithResource(s.file).
			WithSuggestion("Check the path passed with -f/--file").
			WithSuggestion("Pass the program inline with -p instead").
			Wrap(readErr).
			BuildError()
	}
	return string(data), s.file, nil
}

// renderIssue prints the cataloged guidance card for id to stderr, using the
// configured color scheme. Rendering failures are ignored; the plain error
// message still reaches the user through the normal return path.
func renderIssue(id issue.Id) {
	iss := issue.Get(id)
	if iss == nil {
		return
	}
	rendered, err := iss.Render(glamourStyle())
	if err != nil {
		return
	}
	fmt.Fprint(os.Stderr, rendered)
}
