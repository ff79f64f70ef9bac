package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/five82/hackdex/internal/catalog"
	"github.com/five82/hackdex/internal/config"
	"github.com/five82/hackdex/internal/export"
	"github.com/five82/hackdex/internal/filter"
	"github.com/five82/hackdex/internal/prefs"
	"github.com/five82/hackdex/internal/state"
	"github.com/five82/hackdex/internal/ui"
)

// Options configure the hackdex application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/hackdex/prefs.toml
	// Filter is a query such as "status=complete&language=en".
	Filter string
	// ExportPath switches to headless mode: the filtered catalog is written
	// there (.html or .xlsx) instead of starting the TUI.
	ExportPath string
	// Out receives export progress; defaults to stdout.
	Out io.Writer
}

// Run boots hackdex until the TUI exits, the export completes, or the
// context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	criteria, err := filter.ParseQuery(opts.Filter)
	if err != nil {
		return fmt.Errorf("parse filter: %w", err)
	}

	logger := newLogger(cfg.LogPath())
	defer func() { _ = logger.Sync() }()

	client, err := catalog.NewClient(catalog.ClientOptions{
		BaseURL:     cfg.BaseURL,
		CatalogPath: cfg.CatalogPath,
		NamesPath:   cfg.NamesPath,
		Timeout:     cfg.RequestTimeout,
	})
	if err != nil {
		return fmt.Errorf("init catalog client: %w", err)
	}

	if opts.ExportPath != "" {
		out := opts.Out
		if out == nil {
			out = os.Stdout
		}
		return runExport(ctx, exportJob{
			fetcher:  client,
			baseURL:  client.BaseURL(),
			criteria: criteria,
			path:     opts.ExportPath,
			out:      out,
			logger:   logger,
		})
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	userPrefs, _ := prefs.Load(prefsPath)

	loader := &Loader{Store: &state.Store{}, Fetcher: client, Logger: logger}

	uiOpts := ui.Options{
		Context:   ctx,
		Load:      loader.Load,
		Criteria:  criteria,
		ThemeName: userPrefs.Theme,
		CardWidth: userPrefs.CardWidth,
		PrefsPath: prefsPath,
		LogPath:   cfg.LogPath(),
		SiteURL:   client.Resolve,
		Logger:    logger,
	}
	return ui.Run(uiOpts)
}

type exportJob struct {
	fetcher  catalog.Fetcher
	baseURL  string
	criteria filter.Criteria
	path     string
	out      io.Writer
	logger   *zap.Logger
}

// runExport loads the catalog once, filters it and writes the export file.
func runExport(ctx context.Context, job exportJob) error {
	// Reject the destination before touching the network.
	if _, err := export.FormatFor(job.path); err != nil {
		return err
	}

	cat, err := catalog.Load(ctx, job.fetcher)
	if err != nil {
		job.logger.Error("catalog load failed", zap.Error(err))
		return fmt.Errorf("load required data: %w", err)
	}

	visible := filter.Apply(cat.Hacks, job.criteria)
	doc := export.Document{
		Hacks:     visible,
		Total:     len(cat.Hacks),
		Labeler:   catalog.NewFormatter(cat.Names, job.logger),
		Filter:    job.criteria.String(),
		BaseURL:   job.baseURL,
		Generated: time.Now(),
	}
	if err := export.WriteFile(job.path, doc); err != nil {
		return fmt.Errorf("write export: %w", err)
	}

	job.logger.Info("export written",
		zap.String("path", job.path),
		zap.Int("hacks", len(visible)),
		zap.Int("total", len(cat.Hacks)),
		zap.String("filter", doc.Filter),
	)
	fmt.Fprintf(job.out, "wrote %d of %d hacks to %s\n", len(visible), len(cat.Hacks), job.path)
	return nil
}
