// ABOUTME: Add command for creating new notes.
// ABOUTME: Supports inline content, file input, or $EDITOR.

package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/harper/jotpad/internal/ui"
	"github.com/spf13/cobra"
)

func newAddCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [title]",
		Short: "Add a new note",
		Long: `Create a new note with the given title. Content can be provided via --content, --file, or $EDITOR.

An empty title is stored as "Untitled".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var title string
			if len(args) == 1 {
				title = args[0]
			}

			contentFlag, _ := cmd.Flags().GetString("content")
			fileFlag, _ := cmd.Flags().GetString("file")

			var content string
			var err error

			switch {
			case cmd.Flags().Changed("content"):
				content = contentFlag
			case fileFlag != "":
				data, err := os.ReadFile(fileFlag) //nolint:gosec // User-specified file path is expected CLI behavior
				if err != nil {
					return fmt.Errorf("failed to read file: %w", err)
				}
				content = string(data)
			default:
				content, err = openEditor("")
				if err != nil {
					return fmt.Errorf("failed to open editor: %w", err)
				}
			}

			st, err := c.store()
			if err != nil {
				return err
			}
			note, err := st.AddNote(title, content)
			if err != nil {
				return fmt.Errorf("failed to create note: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Success(fmt.Sprintf("Created note %d", note.ID)))
			return nil
		},
	}

	cmd.Flags().String("content", "", "note content (inline)")
	cmd.Flags().String("file", "", "read content from file")
	return cmd
}

func openEditor(initial string) (string, error) {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vim"
	}

	tmpFile, err := os.CreateTemp("", "jotpad-*.md")
	if err != nil {
		return "", err
	}
	defer func() {
		_ = os.Remove(tmpFile.Name()) // Best-effort cleanup
	}()

	if initial != "" {
		if _, err := tmpFile.WriteString(initial); err != nil {
			_ = tmpFile.Close()
			return "", fmt.Errorf("failed to write initial content: %w", err)
		}
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	cmd := exec.Command(editor, tmpFile.Name()) //nolint:gosec // Launching $EDITOR is expected CLI behavior
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(tmpFile.Name())
	if err != nil {
		return "", err
	}

	return string(data), nil
}
