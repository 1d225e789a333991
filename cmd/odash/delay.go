package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/odash/pkg/async"
)

func newDelayCmd() *cobra.Command {
	var ms int

	cmd := &cobra.Command{
		Use:   "delay",
		Short: "Wait for a number of milliseconds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			d := time.Duration(ms) * time.Millisecond
			if ms < 0 {
				d = async.DefaultDelay
			}

			start := time.Now()
			if _, err := async.Delay(ctx, d).Await(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "waited %s\n", time.Since(start).Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().IntVar(&ms, "ms", -1, "milliseconds to wait (default 150)")
	return cmd
}
