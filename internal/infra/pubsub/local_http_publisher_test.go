package pubsub

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"market/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEvent() *service.OfferEvent {
	return &service.OfferEvent{
		RequestID:     "req-1",
		EventID:       "evt-1",
		EventType:     service.OfferEventCountered,
		OfferID:       "offer-1",
		ProductID:     "product-1",
		BuyerID:       "buyer-1",
		SellerID:      "seller-1",
		State:         "countered",
		CurrentAmount: "90.00",
		Version:       2,
		OccurredAt:    time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC),
	}
}

func TestLocalHTTPPublisher_PublishOfferEvent(t *testing.T) {
	var received PushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID = r.Header.Get("X-Request-Id")
		body, err := io.ReadAll(r.Body)
		if err == nil {
			err = json.Unmarshal(body, &received)
		}
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)

			return
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := publisher.PublishOfferEvent(context.Background(), newTestEvent())
	require.NoError(t, err)

	assert.Equal(t, "req-1", requestID)
	assert.Equal(t, "evt-1", received.Message.MessageID)
	assert.Equal(t, service.OfferEventCountered, received.Message.Attributes["event_type"])
	assert.Equal(t, "offer-1", received.Message.Attributes["offer_id"])

	data, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var event service.OfferEvent
	require.NoError(t, json.Unmarshal(data, &event))
	assert.Equal(t, "90.00", event.CurrentAmount)
	assert.Equal(t, int64(2), event.Version)
}

func TestLocalHTTPPublisher_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	publisher := NewLocalHTTPPublisher(server.URL, slog.New(slog.NewTextHandler(io.Discard, nil)))

	err := publisher.PublishOfferEvent(context.Background(), newTestEvent())
	assert.ErrorContains(t, err, "non-success status: 500")
}

func TestEventAttributes_OmitsEmptyRequestID(t *testing.T) {
	event := newTestEvent()
	event.RequestID = ""

	attributes := eventAttributes(event)

	_, ok := attributes["request_id"]
	assert.False(t, ok)
	assert.Equal(t, "product-1", attributes["product_id"])
}
