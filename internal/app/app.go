package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/five82/thronedex/internal/config"
	"github.com/five82/thronedex/internal/logging"
	"github.com/five82/thronedex/internal/pipeline"
	"github.com/five82/thronedex/internal/prefs"
	"github.com/five82/thronedex/internal/query"
	"github.com/five82/thronedex/internal/state"
	"github.com/five82/thronedex/internal/thronesapi"
	"github.com/five82/thronedex/internal/ui"
)

// Options configure a thronedex run.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/thronedex/prefs.toml
	APIURL     string // overrides config file and environment
	Verbose    bool

	// Fetcher replaces the HTTP client when set.
	Fetcher thronesapi.Fetcher
}

// runtime holds the collaborators every command shares.
type runtime struct {
	cfg     config.Config
	logger  *zap.Logger
	fetcher thronesapi.Fetcher
	sorter  *query.Sorter
}

func setup(opts Options) (*runtime, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if opts.APIURL != "" {
		cfg.APIURL = opts.APIURL
	}

	logger, err := logging.New(cfg.LogFile, opts.Verbose)
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}

	sorter, err := query.NewSorter(cfg.Locale)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("init sorter: %w", err)
	}

	fetcher := opts.Fetcher
	if fetcher == nil {
		client, err := thronesapi.NewClient(cfg.APIURL, cfg.Timeout())
		if err != nil {
			_ = logger.Sync()
			return nil, fmt.Errorf("init api client: %w", err)
		}
		fetcher = client
	}

	logger.Debug("runtime ready",
		zap.String("api_url", cfg.APIURL),
		zap.String("locale", sorter.Locale().String()),
		zap.Duration("timeout", cfg.Timeout()),
	)
	return &runtime{cfg: cfg, logger: logger, fetcher: fetcher, sorter: sorter}, nil
}

func (r *runtime) close() {
	_ = r.logger.Sync()
}

// Run boots the thronedex TUI until the user quits or the context is
// cancelled. A failed load is not an error here; the TUI shows its empty
// state.
func Run(ctx context.Context, opts Options) error {
	rt, err := setup(opts)
	if err != nil {
		return err
	}
	defer rt.close()

	userPrefs := prefs.Load(opts.PrefsPath)

	store := state.NewStore()
	store.SetDirection(userPrefs.Direction())

	grid := ui.NewGrid()
	controller, err := pipeline.New(pipeline.Options{
		Fetcher: rt.fetcher,
		Sink:    grid,
		Sorter:  rt.sorter,
		Store:   store,
		Logger:  rt.logger,
	})
	if err != nil {
		return fmt.Errorf("init pipeline: %w", err)
	}

	return ui.Run(ui.Options{
		Context:    ctx,
		Controller: controller,
		Grid:       grid,
		ThemeName:  userPrefs.Theme,
		PrefsPath:  opts.PrefsPath,
		Logger:     rt.logger,
	})
}
