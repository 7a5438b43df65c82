package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vangoui/internal/errors"
	"github.com/vango-dev/vangoui/internal/gallery"
)

func serveCmd(flags *globalFlags) *cobra.Command {
	var (
		port    int
		host    string
		tracing bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the story gallery",
		Long: `Start the story gallery.

Every story page opens a live session: clicks and key presses are
handled on the server and the story is re-rendered in place.

Examples:
  vangoui serve
  vangoui serve --port=8080
  vangoui serve --host=0.0.0.0 --tracing`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, catalog, err := loadProject(flags)
			if err != nil {
				return err
			}
			if port > 0 {
				cfg.Gallery.Port = port
			}
			if host != "" {
				cfg.Gallery.Host = host
			}
			if tracing {
				cfg.Gallery.Tracing = true
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			srv, err := gallery.New(cfg, catalog, gallery.WithLogger(slog.Default()))
			if err != nil {
				return errors.New("E120").Wrap(err)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			printBanner()
			fmt.Println("  gallery")
			fmt.Println()
			success("Serving %d stories from %s", len(catalog.List()), catalog.Source())
			info("Open %s", cfg.URL())
			if cfg.Gallery.Metrics {
				info("Metrics at %s/metrics", cfg.URL())
			}
			fmt.Println()

			if err := srv.ListenAndServe(ctx); err != nil {
				return errors.New("E120").Wrap(err)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from vangoui.json)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default from vangoui.json)")
	cmd.Flags().BoolVar(&tracing, "tracing", false, "Trace requests and live events")

	return cmd
}
