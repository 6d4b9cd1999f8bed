// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	_ "embed"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
)

//go:embed langref.md
var langRef string

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Show the language reference",
	Long:  `Render the Brainfuck language reference as bfk implements it, including tape semantics, input handling, and the step budget.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rendered, err := glamour.Render(langRef, glamourStyle())
		if err != nil {
			// Fall back to the raw markdown rather than failing.
			fmt.Fprint(cmd.OutOrStdout(), langRef)
			return nil
		}
		fmt.Fprint(cmd.OutOrStdout(), rendered)
		return nil
	},
}
