package main

import (
	"context"
	"fmt"
	"time"

	"market/internal/usecase"
)

func runSweep(ctx context.Context, driver string) error {
	var expiryUC usecase.ExpiryUsecase

	return withStore(ctx, driver, []any{&expiryUC}, func(ctx context.Context) error {
		result, err := expiryUC.SweepExpired(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Expired %d offer(s) at %s\n", result.Expired, result.RanAt.UTC().Format(time.RFC3339))

		return nil
	})
}
