// ABOUTME: Version command printing build information.
// ABOUTME: Values are set through ldflags at release time.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "jotpad %s\ncommit: %s\nbuilt: %s\n", version, commit, date)
		},
	}
}
