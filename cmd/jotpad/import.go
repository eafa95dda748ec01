// ABOUTME: Import command for restoring notes from an export.
// ABOUTME: Accepts a JSON export, a markdown file, or a directory of markdown files.

package main

import (
	"fmt"

	"github.com/harper/jotpad/internal/export"
	"github.com/harper/jotpad/internal/ui"
	"github.com/spf13/cobra"
)

func newImportCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "import <path>",
		Short: "Import notes",
		Long: `Import notes from a JSON export, a markdown file, or a directory of
markdown files. Imported notes get fresh ids. An export that was already
imported is skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.store()
			if err != nil {
				return err
			}

			res, err := export.Import(st, args[0])
			if err != nil {
				return fmt.Errorf("failed to import: %w", err)
			}

			out := cmd.OutOrStdout()
			for _, s := range res.Skipped {
				fmt.Fprintln(out, ui.Warning("Skipped "+s))
			}
			fmt.Fprintln(out, ui.Success(fmt.Sprintf("Imported %d notes", res.Imported)))
			return nil
		},
	}
}
