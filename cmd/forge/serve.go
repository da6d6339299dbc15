package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/forge/internal/preview"
)

func serveCmd(g *globals) *cobra.Command {
	var (
		port     int
		bind     string
		noReload bool
	)

	cmd := &cobra.Command{
		Use:   "serve <layout>",
		Short: "Preview a layout in the browser",
		Long: `Serve a layout over HTTP with live reload.

The page is re-rendered on every request. When the layout file
changes, connected browsers reload, or show the error when the
layout no longer builds. Prometheus metrics are served at /metrics.

Examples:
  forge serve page.yaml
  forge serve page.yaml --port=8080
  forge serve page.yaml --bind=0.0.0.0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), g, args[0], port, bind, noReload)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default from forge.json)")
	cmd.Flags().StringVarP(&bind, "bind", "b", "", "Address to bind to (default from forge.json)")
	cmd.Flags().BoolVar(&noReload, "no-reload", false, "Disable live reload")

	return cmd
}

func runServe(ctx context.Context, g *globals, layoutPath string, port int, bind string, noReload bool) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}
	if _, err := os.Stat(layoutPath); err != nil {
		return fmt.Errorf("layout %s: %w", layoutPath, err)
	}
	if port > 0 {
		cfg.Preview.Port = port
	}
	if bind != "" {
		cfg.Preview.Host = bind
	}
	if noReload {
		off := false
		cfg.Preview.HotReload = &off
	}

	printBanner(g.stdout)
	info(g.stdout, "serving %s at %s", layoutPath, cfg.PreviewURL())
	fmt.Fprintln(g.stdout)

	server := preview.NewServer(preview.Options{
		Config: cfg,
		Layout: layoutPath,
		Logger: logger,
		OnRender: func(err error) {
			if err == nil {
				logger.Debug("page rendered", "layout", layoutPath)
			}
		},
	})

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Start(ctx)
}
