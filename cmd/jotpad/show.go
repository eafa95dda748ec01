// ABOUTME: Show command for displaying a single note.
// ABOUTME: Renders markdown content with glamour.

package main

import (
	"fmt"

	"github.com/harper/jotpad/internal/ui"
	"github.com/spf13/cobra"
)

func newShowCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a note",
		Long:  `Display a note's full content with rendered markdown.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, note, err := c.getNote(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, ui.FormatNoteHeader(&note))

			raw, _ := cmd.Flags().GetBool("raw")
			if raw {
				fmt.Fprintln(out, note.Content)
				return nil
			}
			content, _ := ui.FormatNoteContent(note.Content)
			fmt.Fprint(out, content)
			return nil
		},
	}

	cmd.Flags().Bool("raw", false, "print content without markdown rendering")
	return cmd
}
