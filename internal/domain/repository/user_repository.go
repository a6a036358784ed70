package repository

import (
	"context"

	"market/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository is the read-only user directory.
type UserRepository interface {
	// FindUserByID retrieves a single user by their unique ID.
	FindUserByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
