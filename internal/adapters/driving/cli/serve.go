package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vabank-dev/vabank/internal/adapters/driving/web"
	"github.com/vabank-dev/vabank/internal/logger"
)

var (
	serveAddr  string
	serveWatch bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the website",
	Long: `Serves the site: home, blog, our-work and article pages, the JSON
listing API, sitemap.xml and robots.txt.

With --watch and the export source, the export file is reloaded whenever
it changes on disk.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (default server.addr)")
	serveCmd.Flags().BoolVarP(&serveWatch, "watch", "w", false, "reload content when the source changes")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	if settingsService == nil || listingService == nil {
		return errors.New("services not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if serveAddr != "" {
		settings.Server.Addr = serveAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if serveWatch {
		startWatch(ctx)
	}

	server := web.NewServer(&web.Ports{
		Listing: listingService,
		Content: contentService,
		Render:  renderService,
	}, settings.Site, settings.Server)

	fmt.Fprintf(cmd.ErrOrStderr(), "Serving %s on %s\n", settings.Site.Name, settings.Server.Addr)
	return server.Run(ctx)
}

func startWatch(ctx context.Context) {
	if active == nil || active.Watch == nil {
		logger.Warn("--watch ignored: the content source cannot be watched")
		return
	}
	go func() {
		err := active.Watch(ctx, func() {
			logger.Info("content reloaded")
		})
		if err != nil {
			logger.Warn("watch stopped: %v", err)
		}
	}()
}
