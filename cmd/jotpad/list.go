// ABOUTME: List command for displaying notes.
// ABOUTME: Pinned notes first, then most recently updated.

package main

import (
	"fmt"

	"github.com/harper/jotpad/internal/ui"
	"github.com/spf13/cobra"
)

func newListCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List notes",
		Long:    `List notes with pinned notes first, then by most recent update.`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			pinnedFlag, _ := cmd.Flags().GetBool("pinned")
			limitFlag, _ := cmd.Flags().GetInt("limit")

			st, err := c.store()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			all := st.GetAllSorted()
			if len(all) == 0 {
				fmt.Fprintln(out, "No notes yet. Use 'jotpad add' to create your first note.")
				return nil
			}

			opts := c.uiOptions()
			shown, pinned := 0, 0
			for _, note := range all {
				if note.Pinned {
					pinned++
				}
				if pinnedFlag && !note.Pinned {
					continue
				}
				if limitFlag > 0 && shown >= limitFlag {
					continue
				}
				fmt.Fprint(out, ui.FormatNoteListItem(&note, opts))
				shown++
			}

			if shown == 0 {
				fmt.Fprintln(out, "No notes found.")
				return nil
			}
			fmt.Fprint(out, "\n"+ui.FormatSummary(shown, len(all), pinned))
			return nil
		},
	}

	cmd.Flags().BoolP("pinned", "p", false, "only pinned notes")
	cmd.Flags().IntP("limit", "n", 20, "number of results (0 for all)")
	return cmd
}
