// Command vabank is the content engine behind the vabank.dev site.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vabank-dev/vabank/internal/adapters/driven/clipboard"
	"github.com/vabank-dev/vabank/internal/adapters/driven/config/file"
	"github.com/vabank-dev/vabank/internal/adapters/driven/highlight"
	"github.com/vabank-dev/vabank/internal/adapters/driven/sanity"
	"github.com/vabank-dev/vabank/internal/adapters/driven/storage/export"
	"github.com/vabank-dev/vabank/internal/adapters/driven/storage/memory"
	"github.com/vabank-dev/vabank/internal/adapters/driven/storage/sqlite"
	"github.com/vabank-dev/vabank/internal/adapters/driven/validate"
	"github.com/vabank-dev/vabank/internal/adapters/driving/cli"
	"github.com/vabank-dev/vabank/internal/core/domain"
	"github.com/vabank-dev/vabank/internal/core/ports/driven"
	"github.com/vabank-dev/vabank/internal/core/services"
	"github.com/vabank-dev/vabank/internal/logger"
)

// Set by the release build.
var version = "dev"

func main() {
	cli.SetVersion(version)
	cli.SetBootstrap(bootstrap)

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap wires adapters to services for the selected content source.
func bootstrap(ctx context.Context, opts cli.Options) (*cli.Services, error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, fmt.Errorf("opening config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)

	if opts.SettingsOnly {
		return &cli.Services{Settings: settingsService}, nil
	}

	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	if opts.Source != "" {
		settings.Content.Source = opts.Source
	}

	var closers []func() error
	closeAll := func() error {
		var errs []error
		for i := len(closers) - 1; i >= 0; i-- {
			errs = append(errs, closers[i]())
		}
		return errors.Join(errs...)
	}

	var upstream *sanity.Store
	if settings.Sanity.IsConfigured() {
		client, err := sanity.NewClient(ctx, settings.Sanity, settings.Content.Timeout)
		if err != nil {
			return nil, fmt.Errorf("creating sanity client: %w", err)
		}
		upstream = sanity.NewStore(client)
	}

	var (
		store  driven.ContentStore
		mirror *sqlite.Store
		watch  func(ctx context.Context, onChange func()) error
	)

	switch settings.Content.Source {
	case domain.SourceSanity:
		if upstream == nil {
			return nil, fmt.Errorf("%w: sanity.project_id is required for the sanity source", domain.ErrInvalidInput)
		}
		store = upstream
	case domain.SourceExport:
		exp, err := export.NewStore(settings.Content.ExportPath)
		if err != nil {
			return nil, fmt.Errorf("opening export: %w", err)
		}
		store = exp
		watch = exp.Watch
	case domain.SourceMemory:
		mem := memory.NewContentStore(memory.DemoContent()...)
		store = mem
		closers = append(closers, mem.Close)
	default:
		mirror, err = sqlite.NewStore(dataDir(opts.ConfigDir))
		if err != nil {
			return nil, fmt.Errorf("opening mirror: %w", err)
		}
		store = mirror
		closers = append(closers, mirror.Close)
	}
	logger.Debug("content source: %s", settings.Content.Source)

	validator := validate.New()
	contentService := services.NewContentService(store, validator, settings.Content.Timeout)
	listingService := services.NewListingService(contentService, settings.Listings)

	var images driven.ImageResolver
	if settings.Sanity.ProjectID != "" {
		images = sanity.NewImageResolver(settings.Sanity.ProjectID, settings.Sanity.Dataset)
	}
	renderer := services.NewRenderer(images, highlight.New(settings.Render.CodeStyle, highlight.FormatHTML), settings.Render.Strict)

	var board driven.Clipboard
	if clipboard.Available() {
		board = clipboard.New()
	}

	copyIndicator := services.NewCopyIndicator(board)
	closers = append(closers, func() error {
		copyIndicator.Stop()
		return nil
	})

	svc := &cli.Services{
		Listing:  listingService,
		Content:  contentService,
		Render:   renderer,
		Copy:     copyIndicator,
		Settings: settingsService,
		Watch:    watch,
		Close:    closeAll,
	}

	if upstream != nil {
		if mirror == nil {
			if mirror, err = sqlite.NewStore(dataDir(opts.ConfigDir)); err != nil {
				logger.Warn("mirror unavailable, sync disabled: %v", err)
			} else {
				closers = append(closers, mirror.Close)
			}
		}
		if mirror != nil {
			svc.Mirror = services.NewMirrorService(upstream, mirror, validator)
		}
	}

	return svc, nil
}

// dataDir places the mirror next to the config when --config is given.
func dataDir(configDir string) string {
	if configDir == "" {
		return ""
	}
	return filepath.Join(configDir, "data")
}
