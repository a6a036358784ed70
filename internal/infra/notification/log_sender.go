package notification

import (
	"context"
	"log/slog"

	"market/internal/domain/constants"
	"market/internal/domain/service"

	"github.com/google/uuid"
)

type logSender struct {
	from   string
	logger *slog.Logger
}

// NewLogSender creates a sender that writes notices to the log. Used when no
// SMTP relay is configured.
func NewLogSender(from string, logger *slog.Logger) service.NotificationSender {
	return &logSender{
		from:   from,
		logger: logger,
	}
}

func (s *logSender) Send(ctx context.Context, notice *service.Mail) (*service.DeliveryInfo, error) {
	id := uuid.NewString()

	s.logger.InfoContext(ctx, "[LogMail] Notice",
		slog.String("message_id", id),
		slog.String("from", s.from),
		slog.String("to", notice.To),
		slog.String("subject", notice.Subject),
		slog.String("body", notice.Body),
	)

	return &service.DeliveryInfo{
		Provider:  constants.NotificationProviderLog,
		MessageID: id,
	}, nil
}
