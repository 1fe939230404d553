package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/passport-scorer/scorer-ui/internal/buildinfo"
	"github.com/passport-scorer/scorer-ui/internal/logging"
	"github.com/passport-scorer/scorer-ui/internal/publish"
	"github.com/passport-scorer/scorer-ui/web"
)

func publishCmd(configPath *string) *cobra.Command {
	var (
		bucket      string
		prefix      string
		region      string
		endpoint    string
		assetBase   string
		className   string
		pathStyle   bool
		fingerprint bool
		prune       bool
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload pre-rendered footers to S3",
		Long: `Render the light and dark footers and upload them, with their icons,
to an S3 bucket:

  <prefix>footer-light.html
  <prefix>footer-dark.html
  <prefix>assets/*.svg

Credentials come from the default AWS chain: environment variables,
shared config and profiles (AWS_PROFILE), SSO, web identity and
instance metadata.

Examples:
  scorer-ui publish --bucket=scorer-static
  scorer-ui publish --bucket=scorer-static --fingerprint --asset-base=https://cdn.example.com/footer/assets/
  scorer-ui publish --bucket=dev --endpoint=http://localhost:9000 --path-style`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if bucket != "" {
				cfg.Publish.Bucket = bucket
			}
			if cmd.Flags().Changed("prefix") {
				cfg.Publish.Prefix = prefix
			}
			if region != "" {
				cfg.Publish.Region = region
			}
			if endpoint != "" {
				cfg.Publish.Endpoint = endpoint
			}
			if pathStyle {
				cfg.Publish.PathStyle = true
			}

			logger := logging.New(cfg.Log, os.Stderr)

			opts := publish.Options{
				Bucket:      cfg.Publish.Bucket,
				Prefix:      cfg.Publish.Prefix,
				AssetBase:   assetBase,
				CommitHash:  buildinfo.CommitOr(cfg.Footer.CommitHash),
				ClassName:   className,
				Fingerprint: fingerprint,
				Prune:       prune,
				Static:      web.Public(),
				Logger:      logger,
			}
			if err := opts.Validate(); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			client, err := publish.NewClient(ctx, cfg.Publish)
			if err != nil {
				return err
			}
			p, err := publish.New(client, opts)
			if err != nil {
				return err
			}

			keys, err := p.Publish(ctx)
			if err != nil {
				return err
			}
			success("Published %d objects to s3://%s", len(keys), cfg.Publish.Bucket)
			for _, k := range keys {
				info(k)
			}

			if prune {
				deleted, err := p.Prune(ctx, keys)
				if err != nil {
					return err
				}
				if len(deleted) > 0 {
					warn("Removed %d stale objects", len(deleted))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "Destination bucket (default from config)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix (default \"footer/\")")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default from config)")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "Custom S3 endpoint URL")
	cmd.Flags().BoolVar(&pathStyle, "path-style", false, "Use path-style addressing")
	cmd.Flags().StringVar(&assetBase, "asset-base", "", "URL prefix for icons in the rendered HTML (default \"/assets/\")")
	cmd.Flags().StringVar(&className, "class", "", "Extra classes for the root element")
	cmd.Flags().BoolVar(&fingerprint, "fingerprint", false, "Upload icons under content-hashed names")
	cmd.Flags().BoolVar(&prune, "prune", false, "Delete objects under the prefix that were not just published")

	return cmd
}
