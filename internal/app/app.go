package app

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/calegray/foyer/internal/config"
	"github.com/calegray/foyer/internal/forge"
	"github.com/calegray/foyer/internal/prefs"
	"github.com/calegray/foyer/internal/state"
	"github.com/calegray/foyer/internal/ui"
)

// Options configure the Foyer application.
type Options struct {
	ConfigPath   string
	PrefsPath    string        // empty uses default ~/.config/foyer/prefs.toml
	RefreshEvery time.Duration // zero uses the config value
	Logger       *log.Logger   // nil discards
}

// Run boots the Foyer TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, _ := prefs.Load(opts.PrefsPath)

	client, err := forge.NewClient(cfg.APIBase)
	if err != nil {
		return fmt.Errorf("init forge client: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	store := &state.Store{}

	interval := cfg.RefreshEvery
	if opts.RefreshEvery > 0 {
		interval = opts.RefreshEvery
	}

	// Repository list arrives in the background; the UI shows a spinner
	// until the first snapshot lands.
	StartPoller(ctx, store, client, cfg.GitHubUser, interval, logger)

	uiOpts := ui.Options{
		Context:      ctx,
		Client:       client,
		Store:        store,
		Config:       &cfg,
		ThemeName:    userPrefs.Theme,
		ReduceMotion: userPrefs.ReduceMotion,
		PrefsPath:    opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
