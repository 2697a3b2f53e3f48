// Command shiftctl runs roster maintenance and reporting against the configured storage.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/daphos/shift-service/internal/app"
	"github.com/daphos/shift-service/internal/config"
	"github.com/daphos/shift-service/internal/observability"
)

// env is what every subcommand needs; it is opened lazily so hash-password
// works without storage.
type env struct {
	cfg     *config.Config
	logger  *zap.Logger
	storage *app.Storage
}

func (e *env) open(ctx context.Context, logLevel string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	cfg.Logger.Format = "console"
	cfg.Logger.Level = logLevel
	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		return err
	}
	storage, err := app.OpenStorage(ctx, cfg, logger)
	if err != nil {
		return err
	}
	e.cfg, e.logger, e.storage = cfg, logger, storage
	return nil
}

func (e *env) close() {
	if e.storage != nil {
		e.storage.Close()
	}
	if e.logger != nil {
		_ = e.logger.Sync()
	}
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		e        env
		logLevel string
	)

	root := &cobra.Command{
		Use:           "shiftctl",
		Short:         "Roster maintenance and shift reports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	withStorage := func(run func(cmd *cobra.Command, args []string, e *env) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			if err := e.open(cmd.Context(), logLevel); err != nil {
				return err
			}
			defer e.close()
			return run(cmd, args, &e)
		}
	}

	root.AddCommand(
		newDashboardCommand(withStorage),
		newExportCommand(withStorage),
		newSeedCommand(withStorage),
		newMigrateCommand(withStorage),
		newHashPasswordCommand(),
	)
	return root
}
