// ABOUTME: Remove command for deleting notes.
// ABOUTME: Includes confirmation prompt before deletion.

package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/harper/jotpad/internal/ui"
	"github.com/spf13/cobra"
)

func newRmCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rm <id>...",
		Short: "Remove notes",
		Long:  `Delete one or more notes. Unknown ids are skipped.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")

			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			st, err := c.store()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !force {
				if len(ids) == 1 {
					note, ok := st.GetNote(ids[0])
					if !ok {
						return fmt.Errorf("note %d not found", ids[0])
					}
					fmt.Fprintf(out, "Delete note %q (%d)? [y/N] ", note.Title, note.ID)
				} else {
					fmt.Fprintf(out, "Delete %d notes? [y/N] ", len(ids))
				}
				reader := bufio.NewReader(cmd.InOrStdin())
				response, _ := reader.ReadString('\n')
				response = strings.TrimSpace(strings.ToLower(response))
				if response != "y" && response != "yes" {
					fmt.Fprintln(out, "Cancelled.")
					return nil
				}
			}

			var deleted int
			if len(ids) == 1 {
				ok, err := st.DeleteNote(ids[0])
				if err != nil {
					return fmt.Errorf("failed to delete note: %w", err)
				}
				if ok {
					deleted = 1
				}
			} else {
				deleted, err = st.DeleteNotes(ids)
				if err != nil {
					return fmt.Errorf("failed to delete notes: %w", err)
				}
			}
			if deleted == 0 {
				fmt.Fprintln(out, ui.Warning("No matching notes."))
				return nil
			}

			fmt.Fprintln(out, ui.Success(fmt.Sprintf("Deleted %d of %d notes", deleted, len(ids))))
			return nil
		},
	}

	cmd.Flags().BoolP("force", "f", false, "skip confirmation")
	return cmd
}
