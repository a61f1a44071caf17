package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/calegray/foyer/internal/app"
	"github.com/calegray/foyer/internal/buildinfo"
)

// Execute runs the foyer CLI. The bare command starts the TUI;
// subcommands run once and exit.
func Execute(ctx context.Context) error {
	var (
		configPath string
		prefsPath  string
		refresh    time.Duration
		logFile    string
		verbose    bool
	)

	root := &cobra.Command{
		Use:   "foyer",
		Short: "A terminal portfolio with a playful streak",
		Long: `Foyer renders a personal portfolio in the terminal: a home view
whose tags scatter away from the pointer and reassemble on their
own, a live GitHub project list, and an about page.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, cleanup, err := tuiLogger(logFile, verbose)
			if err != nil {
				return err
			}
			defer cleanup()
			return app.Run(cmd.Context(), app.Options{
				ConfigPath:   configPath,
				PrefsPath:    prefsPath,
				RefreshEvery: refresh,
				Logger:       logger,
			})
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config.toml (default ~/.config/foyer/config.toml)")
	root.PersistentFlags().StringVar(&prefsPath, "prefs", "", "path to prefs.toml (default ~/.config/foyer/prefs.toml)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.Flags().DurationVar(&refresh, "refresh", 0, "repository refresh interval (default from config)")
	root.Flags().StringVar(&logFile, "log-file", "", "append TUI logs to this file")

	root.AddCommand(newReposCmd(&configPath))
	root.AddCommand(newThemesCmd(&prefsPath))

	return root.ExecuteContext(ctx)
}

// tuiLogger builds the logger for the TUI process. The program owns the
// terminal while running, so logs go to a file or nowhere, never stderr.
func tuiLogger(path string, verbose bool) (*charmlog.Logger, func(), error) {
	if path == "" {
		return charmlog.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	level := charmlog.InfoLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	return newLogger(f, level), func() { _ = f.Close() }, nil
}
