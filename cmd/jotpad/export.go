// ABOUTME: Export command for writing notes to JSON or markdown.
// ABOUTME: JSON goes to stdout unless --output is set; markdown writes one file per note.

package main

import (
	"fmt"

	"github.com/harper/jotpad/internal/export"
	"github.com/harper/jotpad/internal/ui"
	"github.com/spf13/cobra"
)

func newExportCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export notes",
		Long: `Export all notes.

Formats:
  json  single document with every note (default, stdout unless --output)
  md    one markdown file per note with YAML frontmatter, written to --output`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			output, _ := cmd.Flags().GetString("output")

			st, err := c.store()
			if err != nil {
				return err
			}
			doc := export.Build(st.GetAllSorted())

			switch format {
			case "json":
				if err := export.WriteJSONFile(output, cmd.OutOrStdout(), doc); err != nil {
					return fmt.Errorf("failed to write export: %w", err)
				}
				if output != "" && output != "-" {
					fmt.Fprintln(cmd.ErrOrStderr(), ui.Success(fmt.Sprintf("Exported %d notes to %s", len(doc.Notes), output)))
				}
			case "md", "markdown":
				n, err := export.WriteMarkdownDir(output, doc)
				if err != nil {
					return fmt.Errorf("failed to write export: %w", err)
				}
				dir := output
				if dir == "" {
					dir = "export"
				}
				fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Exported %d notes to %s", n, dir)))
			default:
				return fmt.Errorf("unknown format %q (use json or md)", format)
			}
			c.logger.Info("exported notes", "format", format, "count", len(doc.Notes), "id", doc.ID)
			return nil
		},
	}

	cmd.Flags().StringP("format", "f", "json", "export format (json, md)")
	cmd.Flags().StringP("output", "o", "", "output file or directory")
	return cmd
}
