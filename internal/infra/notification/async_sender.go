package notification

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultSendTimeout = 30 * time.Second
	providerQueued     = "queued"
)

// Dispatcher errors.
var (
	ErrQueueFull       = errors.New("notification queue is full")
	ErrDispatcherClose = errors.New("notification dispatcher is closed")
)

type job struct {
	ctx    context.Context
	notice *service.Mail
}

// AsyncSender hands notices to a bounded queue drained by a fixed number of
// workers. Send never blocks the caller.
type AsyncSender struct {
	next        service.NotificationSender
	channel     string
	metrics     service.MetricsRecorder
	logger      *slog.Logger
	sendTimeout time.Duration

	mu     sync.RWMutex
	closed bool
	jobs   chan job
	wg     sync.WaitGroup
}

// AsyncSenderOptions configures an AsyncSender.
type AsyncSenderOptions struct {
	Channel     string
	QueueSize   int
	Workers     int
	SendTimeout time.Duration
	Metrics     service.MetricsRecorder
	Logger      *slog.Logger
}

// NewAsyncSender wraps next and starts the workers.
func NewAsyncSender(next service.NotificationSender, opts AsyncSenderOptions) *AsyncSender {
	if opts.QueueSize <= 0 {
		opts.QueueSize = 1
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.SendTimeout <= 0 {
		opts.SendTimeout = defaultSendTimeout
	}

	sender := &AsyncSender{
		next:        next,
		channel:     opts.Channel,
		metrics:     opts.Metrics,
		logger:      opts.Logger,
		sendTimeout: opts.SendTimeout,
		jobs:        make(chan job, opts.QueueSize),
	}

	sender.wg.Add(opts.Workers)
	for range opts.Workers {
		go sender.work()
	}

	return sender
}

// Send enqueues the notice. A full queue drops it with a warning.
func (s *AsyncSender) Send(ctx context.Context, notice *service.Mail) (*service.DeliveryInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrDispatcherClose
	}

	select {
	case s.jobs <- job{ctx: context.WithoutCancel(ctx), notice: notice}:
		return &service.DeliveryInfo{Provider: providerQueued}, nil
	default:
		deliverycontext.GetLoggerOrDefault(ctx, s.logger).Warn("Notification queue full, dropping notice",
			slog.String("to", notice.To),
			slog.String("subject", notice.Subject),
		)
		s.observe(ErrQueueFull)

		return nil, ErrQueueFull
	}
}

func (s *AsyncSender) work() {
	defer s.wg.Done()

	for j := range s.jobs {
		s.deliver(j)
	}
}

func (s *AsyncSender) deliver(j job) {
	ctx, cancel := context.WithTimeout(j.ctx, s.sendTimeout)
	defer cancel()

	logger := deliverycontext.GetLoggerOrDefault(j.ctx, s.logger)

	info, err := s.next.Send(ctx, j.notice)
	s.observe(err)
	if err != nil {
		logger.Warn("Failed to deliver notice",
			slog.String("channel", s.channel),
			slog.String("to", j.notice.To),
			slog.Any("error", err),
		)

		return
	}

	logger.Debug("Notice delivered",
		slog.String("channel", s.channel),
		slog.String("provider", info.Provider),
		slog.String("message_id", info.MessageID),
	)
}

func (s *AsyncSender) observe(err error) {
	if s.metrics != nil {
		s.metrics.ObserveNotification(s.channel, err)
	}
}

// Close stops accepting notices and waits for queued ones until ctx is done.
func (s *AsyncSender) Close(ctx context.Context) error {
	s.mu.Lock()
	if !s.closed {
		s.closed = true
		close(s.jobs)
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "notification queue not drained")
	}
}
