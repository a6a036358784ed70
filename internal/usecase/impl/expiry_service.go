package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/repository"
	"market/internal/domain/service"
	"market/internal/usecase"

	"go.uber.org/fx"
)

// expiryService implements the ExpiryUsecase interface.
type expiryService struct {
	offerRepo repository.OfferRepository
	metrics   service.MetricsRecorder
	now       func() time.Time
	logger    *slog.Logger
}

// ExpiryServiceParams holds dependencies for ExpiryService, injected by Fx.
type ExpiryServiceParams struct {
	fx.In

	OfferRepo repository.OfferRepository
	Metrics   service.MetricsRecorder
	Logger    *slog.Logger
}

// NewExpiryService is the constructor for expiryService.
func NewExpiryService(params ExpiryServiceParams) usecase.ExpiryUsecase {
	return &expiryService{
		offerRepo: params.OfferRepo,
		metrics:   params.Metrics,
		now:       time.Now,
		logger:    params.Logger,
	}
}

// SweepExpired expires every overdue active offer with one conditional bulk
// update. Offers a participant touched concurrently are skipped by the store.
func (srv *expiryService) SweepExpired(ctx context.Context) (*usecase.SweepResult, error) {
	logger := deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
	ranAt := srv.now()

	expired, err := srv.offerRepo.ExpireOverdueOffers(ctx, ranAt)
	if srv.metrics != nil {
		srv.metrics.ObserveSweep(expired, err)
	}
	if err != nil {
		logger.Error("Offer expiry sweep failed", slog.Any("error", err))

		return nil, storeError(err, "failed to expire overdue offers")
	}

	if expired > 0 {
		logger.Info("Offer expiry sweep completed", slog.Int64("expired", expired))
	} else {
		logger.Debug("Offer expiry sweep found nothing to expire")
	}

	return &usecase.SweepResult{Expired: expired, RanAt: ranAt}, nil
}
