package service

import (
	"context"
)

// Mail is a plain-text notice addressed to one user.
type Mail struct {
	To      string
	Subject string
	Body    string
}

// DeliveryInfo describes an accepted message.
type DeliveryInfo struct {
	Provider  string `json:"provider"`
	MessageID string `json:"message_id"`
}

// NotificationSender delivers notices on a best-effort basis. Callers log
// failures and never let them affect the operation that triggered the notice.
type NotificationSender interface {
	Send(ctx context.Context, mail *Mail) (*DeliveryInfo, error)
}
