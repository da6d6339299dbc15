package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/forge/internal/config"
	"github.com/vango-dev/forge/internal/site"
)

func renderCmd(g *globals) *cobra.Command {
	var (
		out    string
		host   string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "render <layout>",
		Short: "Render a layout to HTML",
		Long: `Render a layout file to a complete HTML document.

The document is written to stdout unless --out is given.

Examples:
  forge render page.yaml
  forge render page.yaml --out dist/index.html
  forge render page.yaml --host html --pretty`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return traced(cmd, func(ctx context.Context) error {
				return runRender(ctx, g, args[0], out, host, cmd.Flags().Changed("pretty"), pretty)
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the document to this file")
	cmd.Flags().StringVar(&host, "host", "", fmt.Sprintf("Tree host: %q or %q (default from forge.json)", config.HostVDOM, config.HostHTML))
	cmd.Flags().BoolVar(&pretty, "pretty", false, "Indent the output (vdom host only)")

	return cmd
}

func runRender(ctx context.Context, g *globals, layoutPath, out, host string, prettySet, pretty bool) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}
	if host != "" {
		cfg.Render.Host = host
	}
	if prettySet {
		cfg.Render.Pretty = pretty
	}

	page, err := site.New(site.Options{Config: cfg, Logger: logger}).Render(ctx, layoutPath, "")
	if err != nil {
		return err
	}

	if out == "" {
		_, err := g.stdout.Write(page.HTML)
		return err
	}
	if err := os.WriteFile(out, page.HTML, 0644); err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	success(g.stderr, "Rendered %s to %s (%d bytes)", layoutPath, out, len(page.HTML))
	return nil
}
