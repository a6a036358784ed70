package mongo

import (
	"context"

	domainerrors "market/internal/domain/errors"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/mongo"
)

func isTransientError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) ||
		mongo.IsNetworkError(err) ||
		mongo.IsTimeout(err) ||
		errors.Is(err, mongo.ErrClientDisconnected)
}

// translateError maps driver failures that are not domain outcomes to the
// store error taxonomy.
func translateError(err error, details string) error {
	if isTransientError(err) {
		return errors.Wrap(domainerrors.ErrStoreUnavailable.WithDetails(details), err.Error())
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
