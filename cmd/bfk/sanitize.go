// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"bfk-cli/internal/interp"

	"github.com/spf13/cobra"
)

var (
	sanitizeSrc programSource

	sanitizeCmd = &cobra.Command{
		Use:   "sanitize",
		Short: "Print the program with all non-command characters stripped",
		Long: `Print the sanitized form of a program: only the eight command
characters +-<>[],. survive, in their original order. This is the form
the interpreter executes and the form 'bfk check' reports positions
against.`,
		Example: `  bfk sanitize -p "<!--++>-->"`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, _, err := sanitizeSrc.load()
			if err != nil {
				cmd.SilenceErrors = true
				cmd.SilenceUsage = true
				return &ExitError{Code: 1, Err: err}
			}
			fmt.Fprintln(cmd.OutOrStdout(), interp.Sanitize(text))
			return nil
		},
	}
)

func init() {
	sanitizeSrc.register(sanitizeCmd)
}
