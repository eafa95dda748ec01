// ABOUTME: Root command wiring config, logging and the note store.
// ABOUTME: Running jotpad without a subcommand starts the terminal app.

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/harper/jotpad/internal/app"
	"github.com/harper/jotpad/internal/config"
	"github.com/harper/jotpad/internal/device"
	"github.com/harper/jotpad/internal/logging"
	"github.com/harper/jotpad/internal/models"
	"github.com/harper/jotpad/internal/store"
	"github.com/harper/jotpad/internal/ui"
	"github.com/spf13/cobra"
)

// cli holds state shared by every command for one invocation.
type cli struct {
	configPath string
	dataDir    string
	logLevel   string

	cfg     *config.Config
	logger  *log.Logger
	logFile io.Closer
	st      *store.Store
}

// Execute runs the command line and prints any error to stderr.
func Execute() error {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
		return err
	}
	return nil
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "jotpad",
		Short: "Quick notes with pinning",
		Long: `jotpad keeps short notes in plain JSON files.

Run without arguments to open the terminal app, or use the subcommands
to manage notes from scripts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       fmt.Sprintf("%s (%s, %s)", version, commit, date),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return c.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := c.store()
			if err != nil {
				return err
			}
			guard := device.NewGuard(device.New(c.cfg.Device, c.logger), c.logger)
			return app.Run(cmd.Context(), app.Options{
				Store:            st,
				Guard:            guard,
				Logger:           c.logger,
				PreviewLength:    c.cfg.PreviewLength,
				RowPreviewLength: c.cfg.RowPreviewLength,
				Watch:            c.cfg.Watch,
			})
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/jotpad/config.toml)")
	root.PersistentFlags().StringVar(&c.dataDir, "data-dir", "", "directory holding the note documents")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	root.AddCommand(
		newAddCmd(c),
		newListCmd(c),
		newShowCmd(c),
		newEditCmd(c),
		newRmCmd(c),
		newPinCmd(c),
		newExportCmd(c),
		newImportCmd(c),
		newWelcomeCmd(c),
		newConfigCmd(c),
		newMCPCmd(c),
		newVersionCmd(),
	)
	return root
}

// setup loads config and opens the logger. The terminal app and the MCP
// server own stdout, so they log to the log file; other commands log to
// stderr and only warnings by default.
func (c *cli) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	if c.dataDir != "" {
		cfg.DataDir = c.dataDir
	}
	c.cfg = cfg

	toFile := cmd == cmd.Root() || cmd.Name() == "mcp"
	if !toFile {
		level := c.logLevel
		if level == "" {
			level = "warn"
		}
		c.logger = logging.New(cmd.ErrOrStderr(), level)
		return nil
	}

	level := cfg.LogLevel
	if c.logLevel != "" {
		level = c.logLevel
	}
	f, err := logging.OpenFile(cfg.LogFile)
	if err != nil {
		c.logger = logging.New(cmd.ErrOrStderr(), "warn")
		c.logger.Warn("logging to file disabled", "err", err)
		return nil
	}
	c.logFile = f
	c.logger = logging.New(f, level)
	return nil
}

func (c *cli) close() error {
	if c.logFile == nil {
		return nil
	}
	err := c.logFile.Close()
	c.logFile = nil
	return err
}

// store opens the note store on first use.
func (c *cli) store() (*store.Store, error) {
	if c.st != nil {
		return c.st, nil
	}
	st, err := store.Open(c.cfg.DataDir, c.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open notes: %w", err)
	}
	c.st = st
	return st, nil
}

func (c *cli) uiOptions() ui.Options {
	return ui.Options{
		PreviewLength:    c.cfg.PreviewLength,
		RowPreviewLength: c.cfg.RowPreviewLength,
	}
}

// parseIDs converts note id arguments.
func parseIDs(args []string) ([]int, error) {
	ids := make([]int, 0, len(args))
	for _, a := range args {
		id, err := strconv.Atoi(a)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid note id %q", a)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// getNote looks up a single id argument.
func (c *cli) getNote(arg string) (*store.Store, models.Note, error) {
	st, err := c.store()
	if err != nil {
		return nil, models.Note{}, err
	}
	ids, err := parseIDs([]string{arg})
	if err != nil {
		return nil, models.Note{}, err
	}
	note, ok := st.GetNote(ids[0])
	if !ok {
		return nil, models.Note{}, fmt.Errorf("%w: %d", store.ErrNoteNotFound, ids[0])
	}
	return st, note, nil
}
