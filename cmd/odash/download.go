package main

import (
	"context"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/odash/pkg/download"
)

func newDownloadCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "download <url> <name>",
		Short: "Download a file and store it as <name>.pdf",
		Long: `Downloads url and stores it as <name>.pdf in the configured storage.

Storage is configured with ODASH_DOWNLOAD_* variables:
  ODASH_DOWNLOAD_STORAGE     local (default) or s3
  ODASH_DOWNLOAD_DIR         target directory for local storage
  ODASH_DOWNLOAD_TIMEOUT     per download timeout, e.g. 30s
  ODASH_DOWNLOAD_MAX_BYTES   size limit, 0 disables it
  ODASH_DOWNLOAD_S3_BUCKET, ODASH_DOWNLOAD_S3_REGION, ODASH_DOWNLOAD_S3_ENDPOINT ...`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := newLogger(cmd)
			if err != nil {
				return err
			}

			cfg, err := download.LoadConfig()
			if err != nil {
				return err
			}
			if dir != "" {
				cfg.Storage = "local"
				cfg.Dir = dir
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			ht, err := download.NewFromConfig(ctx, cfg, download.WithLogger(log))
			if err != nil {
				return err
			}

			var res *download.Result
			trigger := download.TriggerFunc(func(ctx context.Context, req download.Request) error {
				r, err := ht.Download(ctx, req)
				res = r
				return err
			})
			if err := download.FromURL(ctx, trigger, args[0], args[1]); err != nil {
				return err
			}

			color.New(color.FgGreen).Fprint(cmd.OutOrStdout(), "saved ")
			fmt.Fprintln(cmd.OutOrStdout(), res.Location)
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "store into this local directory, overriding ODASH_DOWNLOAD_STORAGE")
	return cmd
}
