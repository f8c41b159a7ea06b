// Package cli provides the vabank command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vabank-dev/vabank/internal/core/domain"
	"github.com/vabank-dev/vabank/internal/core/ports/driving"
	"github.com/vabank-dev/vabank/internal/logger"
)

// Options are the global flags passed to the bootstrap function.
type Options struct {
	// ConfigDir overrides ~/.vabank.
	ConfigDir string

	// Source overrides content.source for this run.
	Source domain.ContentSource

	// SettingsOnly asks for the settings service alone. Content stores
	// are not opened, so a misconfigured source can still be fixed.
	SettingsOnly bool
}

// Services are the driving ports used by the commands.
type Services struct {
	Listing  driving.ListingService
	Content  driving.ContentService
	Render   driving.RenderService
	Copy     driving.CopyService
	Settings driving.SettingsService

	// Mirror is nil when no Sanity project is configured.
	Mirror driving.MirrorService

	// Watch blocks until ctx ends, calling onChange after each content
	// change. Nil when the source cannot be watched.
	Watch func(ctx context.Context, onChange func()) error

	// Close releases stores opened by the bootstrap.
	Close func() error
}

// BootstrapFunc wires services once flags are parsed.
type BootstrapFunc func(ctx context.Context, opts Options) (*Services, error)

// EnvLogLevel sets the log level when --verbose is not given.
const EnvLogLevel = "VABANK_LOG_LEVEL"

// Command annotations read by setup.
const (
	// skipBootstrap marks commands that run without services.
	skipBootstrap = "skip-bootstrap"

	// settingsOnly marks commands that only need the settings service.
	settingsOnly = "settings-only"
)

var (
	version = "dev"

	verbose    bool
	configDir  string
	sourceFlag string

	bootstrap BootstrapFunc
	active    *Services

	listingService  driving.ListingService
	contentService  driving.ContentService
	renderService   driving.RenderService
	copyService     driving.CopyService
	settingsService driving.SettingsService
	mirrorService   driving.MirrorService
)

var rootCmd = &cobra.Command{
	Use:   "vabank",
	Short: "Content engine for the vabank.dev site",
	Long: `vabank serves the vabank.dev blog, portfolio and tech practices from
Sanity, a local mirror, or a dataset export.

Browse listings in the terminal, render articles, sync the local mirror,
serve the website, or expose the listings to AI assistants over MCP.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
		if active != nil && active.Close != nil {
			return active.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.vabank)")
	rootCmd.PersistentFlags().StringVar(&sourceFlag, "source", "", "content source: sanity, mirror, export or memory")
}

// SetVersion sets the version reported by `vabank version`.
func SetVersion(v string) {
	version = v
}

// SetBootstrap registers the function that wires services.
func SetBootstrap(fn BootstrapFunc) {
	bootstrap = fn
}

// SetServices installs services directly, bypassing the bootstrap.
func SetServices(s *Services) {
	active = s
	if s == nil {
		listingService, contentService, renderService = nil, nil, nil
		copyService, settingsService, mirrorService = nil, nil, nil
		return
	}
	listingService = s.Listing
	contentService = s.Content
	renderService = s.Render
	copyService = s.Copy
	settingsService = s.Settings
	mirrorService = s.Mirror
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Warn("loading .env: %v", err)
	}
	if name, ok := os.LookupEnv(EnvLogLevel); ok && !verbose {
		level, err := logger.ParseLevel(name)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, EnvLogLevel, err)
		}
		logger.SetLevel(level)
	}

	if cmd.Annotations[skipBootstrap] == "true" || active != nil {
		return nil
	}
	if bootstrap == nil {
		return errors.New("services not configured")
	}

	opts := Options{
		ConfigDir:    configDir,
		SettingsOnly: cmd.Annotations[settingsOnly] == "true",
	}
	if sourceFlag != "" {
		src := domain.ContentSource(sourceFlag)
		if !src.IsValid() {
			return fmt.Errorf("%w: unknown source %q", domain.ErrInvalidInput, sourceFlag)
		}
		opts.Source = src
	}

	s, err := bootstrap(cmd.Context(), opts)
	if err != nil {
		return err
	}
	SetServices(s)
	return nil
}
