package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"
)

const (
	poolMonitorInterval       = 5 * time.Second
	poolWarnDurationThreshold = 50 * time.Millisecond
)

// poolMonitor logs when offer requests queue for a pooled connection, which
// is the first sign of contention on hot offers.
type poolMonitor struct {
	logger   *slog.Logger
	stats    func() sql.DBStats
	interval time.Duration
	warnAt   time.Duration
}

func newPoolMonitor(logger *slog.Logger, db *sql.DB) *poolMonitor {
	return &poolMonitor{
		logger:   logger,
		stats:    db.Stats,
		interval: poolMonitorInterval,
		warnAt:   poolWarnDurationThreshold,
	}
}

func (m *poolMonitor) run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	prev := m.stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := m.stats()
			m.observe(ctx, prev, cur)
			prev = cur
		}
	}
}

// observe reports the waits between two samples. Nothing is logged when no
// caller waited.
func (m *poolMonitor) observe(ctx context.Context, prev, cur sql.DBStats) {
	waits := cur.WaitCount - prev.WaitCount
	if waits <= 0 {
		return
	}
	waited := cur.WaitDuration - prev.WaitDuration

	level := slog.LevelDebug
	msg := "Postgres pool wait observed"
	if waited >= m.warnAt {
		level = slog.LevelWarn
		msg = "Postgres pool wait detected"
	}

	m.logger.LogAttrs(ctx, level, msg,
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("max_open", cur.MaxOpenConnections),
		slog.Int("open", cur.OpenConnections),
		slog.Int("in_use", cur.InUse),
		slog.Int("idle", cur.Idle),
	)
}
