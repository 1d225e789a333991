// Package main provides the odash command line tool.
package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/odash/pkg/config"
	"github.com/dmitrymomot/odash/pkg/logger"
)

// Version is set at build time
var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// cliConfig is read from ODASH_* variables.
type cliConfig struct {
	Env      string `env:"ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL"`
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "odash",
		Short: "Everyday helpers for dates, passwords, dropdowns and downloads",
		Long: `odash exposes the odash helper packages on the command line.

Configuration is read from the environment (and a .env file):
  ODASH_ENV            development (text logs) or production (JSON logs)
  ODASH_LOG_LEVEL      debug, info, warn or error
  ODASH_DOWNLOAD_*     download storage settings, see "odash download --help"`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newDatesCmd(),
		newPasswordCmd(),
		newOptionsCmd(),
		newDownloadCmd(),
		newDelayCmd(),
	)
	return root
}

// newLogger builds the command logger. Logs go to stderr so stdout stays
// machine readable.
func newLogger(cmd *cobra.Command) (*slog.Logger, error) {
	var cfg cliConfig
	if err := config.Load(&cfg, config.WithPrefix("ODASH_")); err != nil {
		return nil, err
	}

	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, "odash"),
		logger.WithOutput(cmd.ErrOrStderr()),
	}
	if cfg.LogLevel != "" {
		opts = append(opts, logger.WithLevel(logger.ParseLevel(cfg.LogLevel)))
	}
	return logger.New(opts...), nil
}
