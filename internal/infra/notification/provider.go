// Package notification delivers participant notices by e-mail or to the log.
package notification

import (
	"context"
	"log/slog"

	"market/config"
	"market/internal/domain/constants"
	"market/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SenderParams holds dependencies for NotificationSender, injected by Fx
type SenderParams struct {
	fx.In

	Lc      fx.Lifecycle
	Config  *config.Config
	Metrics service.MetricsRecorder `optional:"true"`
	Logger  *slog.Logger
}

// NewNotificationSender selects the provider from configuration and wraps it
// in the async dispatcher, which is drained on shutdown.
func NewNotificationSender(params SenderParams) (service.NotificationSender, error) {
	cfg := params.Config.Notification
	if cfg == nil {
		cfg = &config.NotificationConfig{}
	}
	logger := params.Logger

	provider := cfg.Provider
	if provider == "" {
		provider = constants.NotificationProviderLog
		if cfg.SMTP.Host != "" {
			provider = constants.NotificationProviderSMTP
		}
	}

	var next service.NotificationSender
	switch provider {
	case constants.NotificationProviderSMTP:
		if cfg.SMTP.Host == "" {
			return nil, errors.New("smtp host is required for smtp provider")
		}
		sender, err := NewSMTPSender(cfg.From, cfg.SMTP)
		if err != nil {
			return nil, err
		}
		next = sender
		logger.Info("Using SMTP notification sender",
			slog.String("host", cfg.SMTP.Host),
			slog.Int("port", cfg.SMTP.Port),
		)

	case constants.NotificationProviderLog:
		next = NewLogSender(cfg.From, logger)
		logger.Info("Using log notification sender")

	default:
		return nil, errors.Errorf("unknown notification provider: %s", provider)
	}

	async := NewAsyncSender(next, AsyncSenderOptions{
		Channel:     provider,
		QueueSize:   cfg.QueueSize,
		Workers:     cfg.Workers,
		SendTimeout: cfg.SMTP.Timeout,
		Metrics:     params.Metrics,
		Logger:      logger,
	})

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Draining notification queue")

			return async.Close(ctx)
		},
	})

	return async, nil
}

// Module provides the notification FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewNotificationSender),
)
