package validator

import (
	"strings"
	"testing"

	domainerrors "market/internal/domain/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Amount    decimal.Decimal `json:"amount" validate:"required,gt=0"`
	Message   string          `json:"message" validate:"max=5"`
	Role      string          `query:"role" validate:"omitempty,oneof=all buyer seller"`
}

func TestCustomValidator_Valid(t *testing.T) {
	cv := New()

	err := cv.Validate(&testRequest{
		ProductID: "9b2f8c1e-4a55-4e0b-9d5e-0f3f8f4c2a11",
		Amount:    decimal.RequireFromString("80.00"),
		Message:   "hi",
		Role:      "buyer",
	})

	assert.NoError(t, err)
}

func TestCustomValidator_ReportsFields(t *testing.T) {
	cv := New()

	err := cv.Validate(&testRequest{
		ProductID: "nope",
		Amount:    decimal.RequireFromString("-1"),
		Message:   strings.Repeat("x", 6),
		Role:      "owner",
	})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	details := appErr.Details()
	assert.Contains(t, details, "product_id must be a valid UUID")
	assert.Contains(t, details, "amount must be greater than 0")
	assert.Contains(t, details, "message must be at most 5 characters")
	assert.Contains(t, details, "role must be one of: all buyer seller")
}

func TestCustomValidator_ZeroAmountIsRequired(t *testing.T) {
	cv := New()

	err := cv.Validate(&testRequest{ProductID: "9b2f8c1e-4a55-4e0b-9d5e-0f3f8f4c2a11"})

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Contains(t, appErr.Details(), "amount is required")
}
