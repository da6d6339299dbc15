package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vango-dev/forge/internal/publish"
	"github.com/vango-dev/forge/internal/site"
)

func publishCmd(g *globals) *cobra.Command {
	var (
		bucket string
		prefix string
		name   string
	)

	cmd := &cobra.Command{
		Use:   "publish <layout>",
		Short: "Render a layout and upload it to S3",
		Long: `Render a layout and upload the document to an S3 bucket.

Credentials are read from AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY
and AWS_SESSION_TOKEN. Set publish.endpoint in forge.json to target
an S3-compatible store.

Examples:
  forge publish page.yaml --bucket my-site
  forge publish page.yaml --prefix preview --name about.html`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return traced(cmd, func(ctx context.Context) error {
				return runPublish(ctx, g, args[0], bucket, prefix, name, nil)
			})
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "Target bucket (default from forge.json)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix (default from forge.json)")
	cmd.Flags().StringVar(&name, "name", "index.html", "Object name under the prefix")

	return cmd
}

// runPublish renders and uploads the layout. A nil client selects the S3
// client configured in forge.json.
func runPublish(ctx context.Context, g *globals, layoutPath, bucket, prefix, name string, client publish.Client) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}
	if bucket != "" {
		cfg.Publish.Bucket = bucket
	}
	if prefix != "" {
		cfg.Publish.Prefix = prefix
	}
	if client == nil {
		client = publish.NewClient(cfg.Publish)
	}

	p, err := publish.New(client, cfg.Publish)
	if err != nil {
		return err
	}

	page, err := site.New(site.Options{Config: cfg, Logger: logger}).Render(ctx, layoutPath, "")
	if err != nil {
		return err
	}

	key, err := p.Publish(ctx, name, layoutPath, page.HTML)
	if err != nil {
		return err
	}
	logger.Info("published", "bucket", cfg.Publish.Bucket, "key", key, "bytes", len(page.HTML))
	success(g.stdout, "Published s3://%s/%s", cfg.Publish.Bucket, key)
	return nil
}
