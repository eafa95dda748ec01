// ABOUTME: Edit command for modifying existing notes.
// ABOUTME: Opens the title and content in $EDITOR and saves through an edit session.

package main

import (
	"fmt"
	"strings"

	"github.com/harper/jotpad/internal/editor"
	"github.com/harper/jotpad/internal/ui"
	"github.com/spf13/cobra"
)

func newEditCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a note",
		Long: `Open a note in $EDITOR for editing.

The first line of the buffer is the title, everything after the first
blank line is the content. Use --title or --content to skip the editor.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, note, err := c.getNote(args[0])
			if err != nil {
				return err
			}

			session := editor.Start(&note)
			if title, _ := cmd.Flags().GetString("title"); cmd.Flags().Changed("title") {
				session.SetTitle(title)
			}
			if content, _ := cmd.Flags().GetString("content"); cmd.Flags().Changed("content") {
				session.SetContent(content)
			}

			if !cmd.Flags().Changed("title") && !cmd.Flags().Changed("content") {
				buf, err := openEditor(formatBuffer(session.Title(), session.Content()))
				if err != nil {
					return fmt.Errorf("failed to open editor: %w", err)
				}
				title, content := parseBuffer(buf)
				session.SetTitle(title)
				session.SetContent(content)
			}

			out := cmd.OutOrStdout()
			if !session.IsDirty() {
				fmt.Fprintln(out, "No changes made.")
				return nil
			}

			updated, err := session.Commit(st)
			if err != nil {
				return fmt.Errorf("failed to update note: %w", err)
			}

			fmt.Fprintln(out, ui.Success(fmt.Sprintf("Updated note %d", updated.ID)))
			return nil
		},
	}

	cmd.Flags().String("title", "", "new title")
	cmd.Flags().String("content", "", "new content")
	return cmd
}

func formatBuffer(title, content string) string {
	return title + "\n\n" + content
}

// parseBuffer splits an editor buffer into title and content.
func parseBuffer(buf string) (title, content string) {
	buf = strings.TrimLeft(buf, "\n")
	title, rest, _ := strings.Cut(buf, "\n")
	return strings.TrimSpace(title), strings.TrimSpace(rest)
}
