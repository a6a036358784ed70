package notification

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"market/internal/domain/service"
	mockSvc "market/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestMail(to string) *service.Mail {
	return &service.Mail{To: to, Subject: "Counter-offer on Vintage bicycle", Body: "Hello"}
}

func TestAsyncSender_DeliversInBackground(t *testing.T) {
	next := mockSvc.NewMockNotificationSender(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)

	delivered := make(chan *service.Mail, 1)
	next.EXPECT().Send(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, notice *service.Mail) (*service.DeliveryInfo, error) {
			delivered <- notice

			return &service.DeliveryInfo{Provider: "log", MessageID: "m-1"}, nil
		}).Once()
	metrics.EXPECT().ObserveNotification("log", nil).Once()

	sender := NewAsyncSender(next, AsyncSenderOptions{
		Channel: "log", QueueSize: 4, Workers: 1, Metrics: metrics, Logger: newDiscardLogger(),
	})

	info, err := sender.Send(context.Background(), newTestMail("buyer@example.com"))
	require.NoError(t, err)
	assert.Equal(t, providerQueued, info.Provider)

	select {
	case notice := <-delivered:
		assert.Equal(t, "buyer@example.com", notice.To)
	case <-time.After(time.Second):
		t.Fatal("notice was not delivered")
	}

	require.NoError(t, sender.Close(context.Background()))
}

func TestAsyncSender_DropsWhenQueueFull(t *testing.T) {
	next := mockSvc.NewMockNotificationSender(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)

	started := make(chan struct{}, 2)
	release := make(chan struct{})
	next.EXPECT().Send(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *service.Mail) (*service.DeliveryInfo, error) {
			started <- struct{}{}
			<-release

			return &service.DeliveryInfo{Provider: "log"}, nil
		}).Times(2)
	metrics.EXPECT().ObserveNotification("log", ErrQueueFull).Once()
	metrics.EXPECT().ObserveNotification("log", nil).Times(2)

	sender := NewAsyncSender(next, AsyncSenderOptions{
		Channel: "log", QueueSize: 1, Workers: 1, Metrics: metrics, Logger: newDiscardLogger(),
	})

	_, err := sender.Send(context.Background(), newTestMail("a@example.com"))
	require.NoError(t, err)
	<-started

	_, err = sender.Send(context.Background(), newTestMail("b@example.com"))
	require.NoError(t, err)

	_, err = sender.Send(context.Background(), newTestMail("c@example.com"))
	assert.ErrorIs(t, err, ErrQueueFull)

	close(release)
	require.NoError(t, sender.Close(context.Background()))
}

func TestAsyncSender_DeliveryFailureIsObserved(t *testing.T) {
	next := mockSvc.NewMockNotificationSender(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)

	sendErr := errors.New("relay refused")
	next.EXPECT().Send(mock.Anything, mock.Anything).Return(nil, sendErr).Once()
	metrics.EXPECT().ObserveNotification("smtp", sendErr).Once()

	sender := NewAsyncSender(next, AsyncSenderOptions{
		Channel: "smtp", QueueSize: 1, Workers: 1, Metrics: metrics, Logger: newDiscardLogger(),
	})

	_, err := sender.Send(context.Background(), newTestMail("a@example.com"))
	require.NoError(t, err)

	require.NoError(t, sender.Close(context.Background()))
}

func TestAsyncSender_CloseDrainsAndRejectsLateSends(t *testing.T) {
	next := mockSvc.NewMockNotificationSender(t)

	next.EXPECT().Send(mock.Anything, mock.Anything).
		Return(&service.DeliveryInfo{Provider: "log"}, nil).Times(3)

	sender := NewAsyncSender(next, AsyncSenderOptions{
		Channel: "log", QueueSize: 3, Workers: 2, Logger: newDiscardLogger(),
	})

	for _, to := range []string{"a@example.com", "b@example.com", "c@example.com"} {
		_, err := sender.Send(context.Background(), newTestMail(to))
		require.NoError(t, err)
	}

	require.NoError(t, sender.Close(context.Background()))
	require.NoError(t, sender.Close(context.Background()))

	_, err := sender.Send(context.Background(), newTestMail("late@example.com"))
	assert.ErrorIs(t, err, ErrDispatcherClose)
}

func TestAsyncSender_CloseHonoursDeadline(t *testing.T) {
	next := mockSvc.NewMockNotificationSender(t)

	release := make(chan struct{})
	defer close(release)
	started := make(chan struct{})
	next.EXPECT().Send(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, *service.Mail) (*service.DeliveryInfo, error) {
			close(started)
			<-release

			return &service.DeliveryInfo{Provider: "log"}, nil
		}).Once()

	sender := NewAsyncSender(next, AsyncSenderOptions{
		Channel: "log", QueueSize: 1, Workers: 1, Logger: newDiscardLogger(),
	})

	_, err := sender.Send(context.Background(), newTestMail("a@example.com"))
	require.NoError(t, err)
	<-started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, sender.Close(ctx), context.DeadlineExceeded)
}

func TestLogSender_Send(t *testing.T) {
	sender := NewLogSender("market@example.com", newDiscardLogger())

	info, err := sender.Send(context.Background(), newTestMail("buyer@example.com"))

	require.NoError(t, err)
	assert.Equal(t, "log", info.Provider)
	assert.NotEmpty(t, info.MessageID)
}
