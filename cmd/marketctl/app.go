package main

import (
	"context"

	"market/config"
	"market/internal/domain/lifecycle"
	logs "market/internal/infra/log"
	"market/internal/infra/metrics"
	"market/internal/infra/persistence"
	"market/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// withStore starts a short-lived fx app wired to the configured store, runs
// fn against the populated targets and stops the app.
func withStore(ctx context.Context, driver string, targets []any, fn func(ctx context.Context) error) error {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			loadConfig(driver),
			logs.New,
			impl.NewExpiryService,
		),
		persistence.Module,
		metrics.Module,
		fx.Populate(targets...),
	)
	if err := app.Err(); err != nil {
		return errors.Wrap(err, "failed to build application")
	}

	startCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		return errors.Wrap(err, "failed to start application")
	}

	runErr := fn(ctx)

	stopCtx, stopCancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer stopCancel()
	if err := app.Stop(stopCtx); err != nil && runErr == nil {
		return errors.Wrap(err, "failed to stop application")
	}

	return runErr
}

func loadConfig(driver string) func() (*config.Config, error) {
	return func() (*config.Config, error) {
		cfg, err := config.New()
		if err != nil {
			return nil, err
		}
		if driver != "" {
			cfg.Store.Driver = driver
		}

		return cfg, nil
	}
}
