package usecase

import (
	"context"
	"time"
)

// SweepResult reports one expiry sweep.
type SweepResult struct {
	Expired int64     `json:"expired"`
	RanAt   time.Time `json:"ran_at"`
}

// ExpiryUsecase moves overdue active offers to expired. It is safe to run
// from several triggers at once.
type ExpiryUsecase interface {
	SweepExpired(ctx context.Context) (*SweepResult, error)
}
