package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"market/config"
	"market/internal/domain/constants"
	domainerrors "market/internal/domain/errors"
	mockUsecase "market/internal/mocks/usecase"
	"market/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

const pushBody = `{"message":{"data":"","attributes":{"request_id":"req-123"},"messageId":"m-1","publishTime":"2026-03-14T12:00:00Z"},"subscription":"projects/p/subscriptions/offer-sweep"}`

func newTestPushHandler(t *testing.T, env string) (*PushHandler, *mockUsecase.MockExpiryUsecase) {
	t.Helper()

	expiryUC := mockUsecase.NewMockExpiryUsecase(t)
	cfg := &config.Config{
		PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal},
	}
	cfg.Env.Env = env

	h := NewPushHandler(PushHandlerParams{
		Config:   cfg,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		ExpiryUC: expiryUC,
	})

	return h, expiryUC
}

func doPush(t *testing.T, h *PushHandler, body string, header map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))

	return rec
}

func TestHandlePush_RunsSweep(t *testing.T) {
	h, expiryUC := newTestPushHandler(t, "production")
	ranAt := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	expiryUC.EXPECT().
		SweepExpired(mock.MatchedBy(func(ctx context.Context) bool { return ctx != nil })).
		Return(&usecase.SweepResult{Expired: 3, RanAt: ranAt}, nil).
		Once()

	rec := doPush(t, h, pushBody, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"expired":3`)
}

func TestHandlePush_RetryableFailureAsksForRedelivery(t *testing.T) {
	h, expiryUC := newTestPushHandler(t, "production")

	expiryUC.EXPECT().
		SweepExpired(mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrStoreUnavailable, "connection reset")).
		Once()

	rec := doPush(t, h, pushBody, nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandlePush_PermanentFailureIsAcknowledged(t *testing.T) {
	h, expiryUC := newTestPushHandler(t, "production")

	expiryUC.EXPECT().
		SweepExpired(mock.Anything).
		Return(nil, domainerrors.NewDatabaseExecuteError(errors.New("syntax error"), "sweep")).
		Once()

	rec := doPush(t, h, pushBody, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_InvalidBody(t *testing.T) {
	h, _ := newTestPushHandler(t, "production")

	rec := doPush(t, h, `{"message":`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlePush_VerifiesToken(t *testing.T) {
	h, expiryUC := newTestPushHandler(t, "production")
	h.verifyPushAuth = true

	var gotAudience string
	h.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		gotAudience = audience
		if token != "good" {
			return nil, errors.New("bad signature")
		}

		return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]interface{}{"email_verified": true}}, nil
	}

	t.Run("missing header", func(t *testing.T) {
		rec := doPush(t, h, pushBody, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		rec := doPush(t, h, pushBody, map[string]string{"Authorization": "Bearer bad"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		expiryUC.EXPECT().
			SweepExpired(mock.Anything).
			Return(&usecase.SweepResult{}, nil).
			Once()

		rec := doPush(t, h, pushBody, map[string]string{"Authorization": "Bearer good"})
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://example.com/push", gotAudience)
	})
}

func TestHandlePush_RejectsForeignIssuer(t *testing.T) {
	h, _ := newTestPushHandler(t, "production")
	h.verifyPushAuth = true
	h.validateToken = func(context.Context, string, string) (*idtoken.Payload, error) {
		return &idtoken.Payload{Issuer: "https://evil.example.com"}, nil
	}

	rec := doPush(t, h, pushBody, map[string]string{"Authorization": "Bearer any"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestExtractRequestID(t *testing.T) {
	h, _ := newTestPushHandler(t, "production")

	msg := &PubSubMessage{}
	msg.Message.Attributes = map[string]string{"request_id": "from-attr"}
	assert.Equal(t, "from-attr", h.extractRequestID(context.Background(), msg))

	generated := h.extractRequestID(context.Background(), &PubSubMessage{})
	assert.NotEmpty(t, generated)
}

func TestHandleSweep(t *testing.T) {
	h, expiryUC := newTestPushHandler(t, constants.EnvDevelop)
	assert.True(t, h.AllowManualSweep())

	e := echo.New()

	t.Run("success", func(t *testing.T) {
		expiryUC.EXPECT().SweepExpired(mock.Anything).Return(&usecase.SweepResult{Expired: 1}, nil).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/sweep", nil)
		require.NoError(t, h.HandleSweep(e.NewContext(req, rec)))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"expired":1`)
	})

	t.Run("store unavailable", func(t *testing.T) {
		expiryUC.EXPECT().SweepExpired(mock.Anything).Return(nil, domainerrors.ErrStoreUnavailable).Once()

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/sweep", nil)
		require.NoError(t, h.HandleSweep(e.NewContext(req, rec)))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "STORE_UNAVAILABLE")
	})
}

func TestNewPushHandler_ManualSweepOnlyInDevelop(t *testing.T) {
	h, _ := newTestPushHandler(t, "production")
	assert.False(t, h.AllowManualSweep())
}
