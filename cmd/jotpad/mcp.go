// ABOUTME: MCP command for running the note server over stdio.
// ABOUTME: Lets AI agents read and manage notes.

package main

import (
	"github.com/harper/jotpad/internal/mcp"
	"github.com/spf13/cobra"
)

func newMCPCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server",
		Long: `Start the Model Context Protocol server over stdio.

Tools: add_note, list_notes, get_note, update_note, delete_notes, toggle_pin
Resources: jotpad://note/{id}
Prompts: summarize-note, organize-notes`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.store()
			if err != nil {
				return err
			}
			server := mcp.NewServer(st, version, c.cfg.PreviewLength, c.logger)
			return server.Serve(cmd.Context())
		},
	}
}
