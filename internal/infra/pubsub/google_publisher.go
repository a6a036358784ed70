package pubsub

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"market/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

const (
	// Offer events are low volume; flush quickly rather than batch.
	googlePublishDelay   = 10 * time.Millisecond
	googlePublishTimeout = 10 * time.Second
)

// googlePubSubPublisher publishes offer events to a Cloud Pub/Sub topic with
// the offer ID as ordering key.
type googlePubSubPublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	topic     string
	logger    *slog.Logger
}

// NewGooglePubSubPublisher connects to projectID and verifies that topicID
// exists before returning.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Pub/Sub client")
	}

	topic := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topic}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topic)
	}

	publisher := client.Publisher(topicID)
	publisher.EnableMessageOrdering = true
	publisher.PublishSettings.DelayThreshold = googlePublishDelay

	logger.Info("Using Google Pub/Sub publisher for offer events", slog.String("topic", topic))

	return &googlePubSubPublisher{
		client:    client,
		publisher: publisher,
		topic:     topic,
		logger:    logger,
	}, nil
}

// PublishOfferEvent blocks until the server acknowledges the event or the
// publish timeout elapses.
func (p *googlePubSubPublisher) PublishOfferEvent(ctx context.Context, event *service.OfferEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "failed to marshal offer event")
	}

	ctx, cancel := context.WithTimeout(ctx, googlePublishTimeout)
	defer cancel()

	result := p.publisher.Publish(ctx, &pubsub.Message{
		Data:        data,
		Attributes:  eventAttributes(event),
		OrderingKey: event.OfferID,
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		// A failed ordered publish pauses the key until resumed.
		p.publisher.ResumePublish(event.OfferID)

		return errors.Wrapf(err, "failed to publish %s for offer %s", event.EventType, event.OfferID)
	}

	p.logger.DebugContext(ctx, "[GooglePubSub] Offer event published",
		slog.String("event_type", event.EventType),
		slog.String("offer_id", event.OfferID),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close flushes pending events and releases the client.
func (p *googlePubSubPublisher) Close() error {
	p.publisher.Stop()

	return errors.Wrap(p.client.Close(), "failed to close Pub/Sub client")
}
