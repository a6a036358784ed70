package main

import (
	"context"
	"fmt"
	"time"

	"market/internal/domain/repository"
	"market/internal/util"

	"github.com/pkg/errors"
)

func runMigrate(ctx context.Context, driver string) error {
	var migrator repository.SchemaMigrator

	return withStore(ctx, driver, []any{&migrator}, func(ctx context.Context) error {
		start := time.Now()
		if err := migrator.Migrate(ctx); err != nil {
			return errors.Wrap(err, "migration failed")
		}

		fmt.Printf("Migration completed in %s\n", util.FormatDuration(time.Since(start)))

		return nil
	})
}
