package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/five82/gymtrack/internal/config"
	"github.com/five82/gymtrack/internal/gymapi"
	"github.com/five82/gymtrack/internal/logging"
	"github.com/five82/gymtrack/internal/prefs"
	"github.com/five82/gymtrack/internal/ui"
)

// Options configure the gymtrack application.
type Options struct {
	ConfigPath string
	EnvFile    string // empty uses .env in the working directory
	PrefsPath  string // empty uses default ~/.config/gymtrack/prefs.toml
	APIURL     string // overrides config file and environment

	// List prints members (or the workouts of MemberID) and exits instead
	// of starting the TUI.
	List     bool
	MemberID string
	Out      io.Writer

	// Demo serves an in-memory backend with sample data and points the
	// client at it.
	Demo bool
}

// Run boots gymtrack until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	if err := config.LoadEnvFile(opts.EnvFile); err != nil {
		return err
	}
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.APIURL != "" {
		cfg.APIURL = opts.APIURL
	}

	logger, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Close() }()

	if opts.Demo {
		demo := startDemo()
		defer demo.Close()
		cfg.APIURL = demo.URL()
		cfg.Endpoints = gymapi.DefaultEndpoints()
	}

	client, err := gymapi.NewClient(cfg.APIURL,
		gymapi.WithTimeout(cfg.RequestTimeout),
		gymapi.WithEndpoints(cfg.Endpoints),
		gymapi.WithLogger(logger.SugaredLogger),
	)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}
	logger.Infow("starting", "api_url", client.BaseURL(), "demo", opts.Demo, "list", opts.List)

	if opts.List {
		out := opts.Out
		if out == nil {
			out = os.Stdout
		}
		return list(ctx, out, client, logger, cfg, gymapi.ID(opts.MemberID))
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		logger.Warnw("load prefs failed", "error", err)
	}

	return ui.Run(ui.Options{
		Context:        ctx,
		Backend:        client,
		Logger:         logger.SugaredLogger,
		RequestTimeout: cfg.RequestTimeout,
		Prefs:          userPrefs,
		PrefsPath:      opts.PrefsPath,
		LogPath:        cfg.LogFile,
	})
}
