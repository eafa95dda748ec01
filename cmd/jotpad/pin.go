// ABOUTME: Pin command for flipping the pinned state of notes.
// ABOUTME: Each given note is toggled on its own.

package main

import (
	"fmt"

	"github.com/harper/jotpad/internal/selection"
	"github.com/harper/jotpad/internal/ui"
	"github.com/spf13/cobra"
)

func newPinCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "pin <id>...",
		Short: "Toggle pin on notes",
		Long:  `Pin unpinned notes and unpin pinned ones. Pinned notes list first.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids, err := parseIDs(args)
			if err != nil {
				return err
			}
			st, err := c.store()
			if err != nil {
				return err
			}

			sel := selection.New()
			for _, id := range ids {
				if _, ok := st.GetNote(id); ok {
					sel.Select(id)
				}
			}
			if !sel.IsSelecting() {
				return fmt.Errorf("no matching notes")
			}
			pinned, unpinned := sel.PinSummary(st.IsPinned)

			if _, err := st.TogglePin(sel.Selected()); err != nil {
				return fmt.Errorf("failed to toggle pin: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Success(selection.PinToast(pinned, unpinned)))
			return nil
		},
	}
}
