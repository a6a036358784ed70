package notification

import (
	"context"
	"strings"

	"market/config"
	"market/internal/domain/constants"
	"market/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/wneessen/go-mail"
)

type smtpSender struct {
	from   string
	client *mail.Client
}

// NewSMTPSender creates a sender that relays notices through the configured
// SMTP server.
func NewSMTPSender(from string, cfg config.SMTPConfig) (service.NotificationSender, error) {
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithTLSPortPolicy(mail.TLSOpportunistic),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.Timeout))
	}
	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}

	client, err := mail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create SMTP client")
	}

	return &smtpSender{
		from:   from,
		client: client,
	}, nil
}

// Send builds a plain-text message and delivers it in one SMTP session.
func (s *smtpSender) Send(ctx context.Context, notice *service.Mail) (*service.DeliveryInfo, error) {
	msg, err := s.buildMessage(notice)
	if err != nil {
		return nil, err
	}

	if err := s.client.DialAndSendWithContext(ctx, msg); err != nil {
		return nil, errors.Wrapf(err, "failed to send mail to %s", notice.To)
	}

	return &service.DeliveryInfo{
		Provider:  constants.NotificationProviderSMTP,
		MessageID: messageID(msg),
	}, nil
}

func (s *smtpSender) buildMessage(notice *service.Mail) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return nil, errors.Wrapf(err, "invalid sender address %q", s.from)
	}
	if err := msg.To(notice.To); err != nil {
		return nil, errors.Wrapf(err, "invalid recipient address %q", notice.To)
	}
	msg.Subject(notice.Subject)
	msg.SetBodyString(mail.TypeTextPlain, notice.Body)
	msg.SetMessageID()

	return msg, nil
}

func messageID(msg *mail.Msg) string {
	ids := msg.GetGenHeader(mail.HeaderMessageID)
	if len(ids) == 0 {
		return ""
	}

	return strings.Trim(ids[0], "<>")
}
