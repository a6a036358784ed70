package pubsub

import "market/internal/domain/service"

// eventAttributes are the message attributes subscribers filter on.
func eventAttributes(event *service.OfferEvent) map[string]string {
	attributes := map[string]string{
		"event_type": event.EventType,
		"offer_id":   event.OfferID,
		"product_id": event.ProductID,
	}
	if event.RequestID != "" {
		attributes["request_id"] = event.RequestID
	}

	return attributes
}
