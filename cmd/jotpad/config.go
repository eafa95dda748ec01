// ABOUTME: Config command for creating and locating the config file.
// ABOUTME: init writes defaults, path prints where the file lives.

package main

import (
	"fmt"

	"github.com/harper/jotpad/internal/config"
	"github.com/harper/jotpad/internal/ui"
	"github.com/spf13/cobra"
)

func newConfigCmd(c *cli) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a config file with default values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.path()
			force, _ := cmd.Flags().GetBool("force")
			if config.Exists(path) && !force {
				return fmt.Errorf("config already exists at %s (use --force to overwrite)", path)
			}
			if err := config.Save(config.DefaultConfig(), path); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), ui.Success("Wrote "+path))
			return nil
		},
	}
	initCmd.Flags().BoolP("force", "f", false, "overwrite an existing config")

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), c.path())
		},
	}

	cmd.AddCommand(initCmd, pathCmd)
	return cmd
}

func (c *cli) path() string {
	if c.configPath != "" {
		return c.configPath
	}
	return config.Path()
}
