package mongo

import (
	"context"
	"testing"

	domainerrors "market/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	t.Run("deadline is retryable", func(t *testing.T) {
		err := translateError(errors.Wrap(context.DeadlineExceeded, "find"), "failed to find offer")

		assert.True(t, domainerrors.IsRetryable(err))
	})

	t.Run("other failures are database errors", func(t *testing.T) {
		cause := errors.New("bad projection")
		err := translateError(cause, "failed to list offers")

		assert.False(t, domainerrors.IsRetryable(err))
		assert.ErrorIs(t, err, cause)

		var dbErr *domainerrors.DatabaseExecuteError
		assert.ErrorAs(t, err, &dbErr)
	})
}
