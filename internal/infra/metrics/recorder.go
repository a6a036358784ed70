// Package metrics exposes Prometheus metrics for the offer engine.
package metrics

import (
	"database/sql"
	"net/http"
	"strconv"
	"time"

	domainerrors "market/internal/domain/errors"
	"market/internal/domain/service"
	"market/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

const namespace = "market"

// Recorder owns a private registry so tests and binaries never share
// collectors.
type Recorder struct {
	registry *prometheus.Registry

	transitions          *prometheus.CounterVec
	sweepRuns            *prometheus.CounterVec
	sweepExpired         prometheus.Counter
	notifications        *prometheus.CounterVec
	notificationFailures *prometheus.CounterVec
	events               *prometheus.CounterVec
	httpRequests         *prometheus.CounterVec
	httpLatency          *prometheus.HistogramVec
}

var _ service.MetricsRecorder = (*Recorder)(nil)

// NewRecorder registers the collectors on a fresh registry.
func NewRecorder() *Recorder {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(registry)

	return &Recorder{
		registry: registry,
		transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "offer_transitions_total",
			Help:      "Offer operations, labeled by transition and outcome",
		}, []string{"transition", "outcome"}),
		sweepRuns: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "offer_sweep_runs_total",
			Help:      "Expiry sweep runs, labeled by outcome",
		}, []string{"outcome"}),
		sweepExpired: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "offer_sweep_expired_total",
			Help:      "Offers moved to expired by the sweep",
		}),
		notifications: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notifications_total",
			Help:      "Notification delivery attempts, labeled by channel",
		}, []string{"channel"}),
		notificationFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "notification_failures_total",
			Help:      "Notifications that were dropped or failed, labeled by channel",
		}, []string{"channel"}),
		events: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "offer_events_published_total",
			Help:      "Offer events handed to the publisher, labeled by event type and outcome",
		}, []string{"event_type", "outcome"}),
		httpRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total HTTP requests processed, labeled by status code",
		}, []string{"method", "route", "status"}),
		httpLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Latency distribution of HTTP requests",
			Buckets:   []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"method", "route"}),
	}
}

func (r *Recorder) ObserveTransition(transition, outcome string) {
	r.transitions.WithLabelValues(transition, outcome).Inc()
}

func (r *Recorder) ObserveSweep(expired int64, err error) {
	if err != nil {
		r.sweepRuns.WithLabelValues(service.OutcomeError).Inc()

		return
	}

	r.sweepRuns.WithLabelValues(service.OutcomeSuccess).Inc()
	r.sweepExpired.Add(float64(expired))
}

func (r *Recorder) ObserveNotification(channel string, err error) {
	r.notifications.WithLabelValues(channel).Inc()
	if err != nil {
		r.notificationFailures.WithLabelValues(channel).Inc()
	}
}

func (r *Recorder) ObserveEvent(eventType string, err error) {
	outcome := service.OutcomeSuccess
	if err != nil {
		outcome = service.OutcomeError
	}
	r.events.WithLabelValues(eventType, outcome).Inc()
}

// RegisterDBStats exports connection pool statistics of db.
func (r *Recorder) RegisterDBStats(db *sql.DB, dbName string) error {
	if err := r.registry.Register(collectors.NewDBStatsCollector(db, dbName)); err != nil {
		return errors.Wrap(err, "failed to register db stats collector")
	}

	return nil
}

// Handler serves the registry in the Prometheus text format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Middleware counts requests and observes latency per route template.
func (r *Recorder) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)

			status := c.Response().Status
			if err != nil {
				// The error handler has not written the response yet.
				status = statusOf(err)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			method := c.Request().Method

			r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			r.httpLatency.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

			return err
		}
	}
}

func statusOf(err error) int {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode()
	}

	return http.StatusInternalServerError
}

// Module provides the metrics FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		fx.Annotate(
			NewRecorder,
			fx.As(fx.Self()),
			fx.As(new(service.MetricsRecorder)),
		),
	),
)
