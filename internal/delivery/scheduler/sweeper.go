// Package scheduler runs periodic jobs inside the API process.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"market/config"
	"market/internal/delivery"
	deliverycontext "market/internal/delivery/context"
	"market/internal/usecase"
	"market/internal/util"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// SweeperParams holds dependencies for the in-process expiry sweeper
type SweeperParams struct {
	fx.In

	Lc       fx.Lifecycle
	Config   *config.Config
	Logger   *slog.Logger
	ExpiryUC usecase.ExpiryUsecase
}

type sweeper struct {
	interval time.Duration
	expiryUC usecase.ExpiryUsecase
	logger   *slog.Logger

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewSweeper returns a delivery that runs the expiry sweep every
// offer.sweepInterval. A zero interval yields a delivery that returns at once.
func NewSweeper(params SweeperParams) delivery.Delivery {
	var interval time.Duration
	if params.Config.Offer != nil {
		interval = params.Config.Offer.SweepInterval
	}

	s := &sweeper{
		interval: interval,
		expiryUC: params.ExpiryUC,
		logger:   params.Logger,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.shutdown,
	})

	return s
}

// Serve blocks until the app stops or ctx is done.
func (s *sweeper) Serve(ctx context.Context) error {
	defer close(s.done)

	if s.interval <= 0 {
		s.logger.Info("In-process expiry sweep disabled")

		return nil
	}

	s.logger.Info("Starting in-process expiry sweep", slog.String("interval", util.FormatDuration(s.interval)))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-s.stop:
			return nil
		case <-ticker.C:
			s.runOnce(ctx)
		}
	}
}

func (s *sweeper) runOnce(ctx context.Context) {
	requestID := uuid.New().String()
	logger := s.logger.With(slog.String("request_id", requestID), slog.String("trigger", "ticker"))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	// Failures are logged by the use case; the next tick retries.
	_, _ = s.expiryUC.SweepExpired(ctx)
}

func (s *sweeper) shutdown(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.stop) })

	select {
	case <-s.done:
	case <-ctx.Done():
	}

	return nil
}
