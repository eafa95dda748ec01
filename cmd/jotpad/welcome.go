// ABOUTME: Welcome command for the first-run screen preference.
// ABOUTME: Shows or sets whether the terminal app opens on the welcome screen.

package main

import (
	"fmt"

	"github.com/harper/jotpad/internal/ui"
	"github.com/spf13/cobra"
)

func newWelcomeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:       "welcome [on|off]",
		Short:     "Show or set the welcome screen",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"on", "off"},
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.store()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(args) == 0 {
				state := "off"
				if st.ShowWelcome() {
					state = "on"
				}
				fmt.Fprintf(out, "Welcome screen: %s\n", state)
				return nil
			}

			show := args[0] == "on"
			if err := st.SetShowWelcome(show); err != nil {
				return fmt.Errorf("failed to save settings: %w", err)
			}
			fmt.Fprintln(out, ui.Success("Welcome screen "+args[0]))
			return nil
		},
	}
}
