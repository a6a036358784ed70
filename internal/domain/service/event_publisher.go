package service

import (
	"context"
	"time"
)

// Offer event types.
const (
	OfferEventCreated   = "offer.created"
	OfferEventCountered = "offer.countered"
	OfferEventAccepted  = "offer.accepted"
	OfferEventRejected  = "offer.rejected"
	OfferEventCancelled = "offer.cancelled"
	OfferEventExpired   = "offer.expired"
	OfferEventMessage   = "offer.message"
)

// OfferEvent is published after an offer mutation commits.
type OfferEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	OfferID       string    `json:"offer_id"`
	ProductID     string    `json:"product_id"`
	BuyerID       string    `json:"buyer_id"`
	SellerID      string    `json:"seller_id"`
	State         string    `json:"state"`
	CurrentAmount string    `json:"current_amount"`
	Version       int64     `json:"version"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOfferEvent publishes an offer lifecycle event
	PublishOfferEvent(ctx context.Context, event *OfferEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
