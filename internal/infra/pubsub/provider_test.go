package pubsub

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"market/config"
	"market/internal/domain/constants"
	"market/internal/domain/service"
	mockSvc "market/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestPublisherParams(t *testing.T, cfg *config.PubSubConfig) PublisherParams {
	t.Helper()

	return PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: &config.Config{PubSub: cfg},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestNewEventPublisher_Providers(t *testing.T) {
	t.Run("unset uses no-op", func(t *testing.T) {
		publisher, err := NewEventPublisher(newTestPublisherParams(t, nil))
		require.NoError(t, err)

		assert.IsType(t, &noopPublisher{}, publisher)
		assert.NoError(t, publisher.PublishOfferEvent(context.Background(), newTestEvent()))
	})

	t.Run("local requires endpoint", func(t *testing.T) {
		_, err := NewEventPublisher(newTestPublisherParams(t, &config.PubSubConfig{Provider: constants.PubSubProviderLocal}))
		assert.Error(t, err)
	})

	t.Run("local", func(t *testing.T) {
		publisher, err := NewEventPublisher(newTestPublisherParams(t, &config.PubSubConfig{
			Provider:      constants.PubSubProviderLocal,
			LocalEndpoint: "http://localhost:8081/push",
		}))
		require.NoError(t, err)
		assert.IsType(t, &localHTTPPublisher{}, publisher)
	})

	t.Run("google requires topic", func(t *testing.T) {
		_, err := NewEventPublisher(newTestPublisherParams(t, &config.PubSubConfig{
			Provider:  constants.PubSubProviderGoogle,
			ProjectID: "p",
		}))
		assert.Error(t, err)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := NewEventPublisher(newTestPublisherParams(t, &config.PubSubConfig{Provider: "kafka"}))
		assert.Error(t, err)
	})
}

func TestNewEventPublisher_ObservesPublishes(t *testing.T) {
	metrics := mockSvc.NewMockMetricsRecorder(t)
	params := newTestPublisherParams(t, nil)
	params.Metrics = metrics

	publisher, err := NewEventPublisher(params)
	require.NoError(t, err)

	metrics.EXPECT().ObserveEvent(service.OfferEventCountered, nil).Return().Once()

	assert.NoError(t, publisher.PublishOfferEvent(context.Background(), newTestEvent()))
}

func TestObservedPublisher_ForwardsFailure(t *testing.T) {
	metrics := mockSvc.NewMockMetricsRecorder(t)
	next := mockSvc.NewMockEventPublisher(t)
	publisher := &observedPublisher{next: next, metrics: metrics}
	event := newTestEvent()
	publishErr := errors.New("topic not found")

	next.EXPECT().PublishOfferEvent(context.Background(), event).Return(publishErr).Once()
	metrics.EXPECT().ObserveEvent(service.OfferEventCountered, publishErr).Return().Once()
	next.EXPECT().Close().Return(nil).Once()

	assert.ErrorIs(t, publisher.PublishOfferEvent(context.Background(), event), publishErr)
	assert.NoError(t, publisher.Close())
}
