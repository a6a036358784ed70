package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"market/internal/delivery/http/middleware"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/service"
	mockSvc "market/internal/mocks/service"
	mockUsecase "market/internal/mocks/usecase"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const adminToken = "admin-token"

func createTestAdminHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockExpiryUsecase) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	expiryUC := mockUsecase.NewMockExpiryUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)

	tokenSvc.EXPECT().ValidateToken(adminToken).
		Return(&service.Claims{UserID: uuid.New(), Roles: []string{"admin"}, Type: "access"}, nil).Maybe()
	tokenSvc.EXPECT().ValidateToken(testToken).
		Return(&service.Claims{UserID: uuid.New(), Roles: []string{"user"}, Type: "access"}, nil).Maybe()
	tokenSvc.EXPECT().ValidateToken(mock.Anything).
		Return(nil, errors.New("invalid token")).Maybe()

	h := NewAdminHandler(AdminHandlerParams{ExpiryUC: expiryUC, Logger: logger})
	auth := middleware.NewAuthMiddleware(tokenSvc)

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError
	e.POST("/admin/offers/sweep", h.SweepExpiredOffers, auth.Authenticate, auth.RequireRole(entity.RoleAdmin))

	return e, expiryUC
}

func doAdminSweep(t *testing.T, e *echo.Echo, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/admin/offers/sweep", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, env
}

func TestAdminHandler_SweepExpiredOffers(t *testing.T) {
	e, expiryUC := createTestAdminHandler(t)
	ranAt := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	expiryUC.EXPECT().SweepExpired(mock.Anything).
		Return(&usecase.SweepResult{Expired: 4, RanAt: ranAt}, nil).Once()

	rec, env := doAdminSweep(t, e, adminToken)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)

	var result usecase.SweepResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assert.Equal(t, int64(4), result.Expired)
	assert.True(t, ranAt.Equal(result.RanAt))
}

func TestAdminHandler_SweepRequiresAdminRole(t *testing.T) {
	e, _ := createTestAdminHandler(t)

	rec, env := doAdminSweep(t, e, testToken)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, env.Success)
}

func TestAdminHandler_SweepStoreUnavailable(t *testing.T) {
	e, expiryUC := createTestAdminHandler(t)

	expiryUC.EXPECT().SweepExpired(mock.Anything).
		Return(nil, domainerrors.ErrStoreUnavailable).Once()

	rec, env := doAdminSweep(t, e, adminToken)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	require.NotNil(t, env.Error)
	assert.Equal(t, "STORE_UNAVAILABLE", env.Error.Code)
}
