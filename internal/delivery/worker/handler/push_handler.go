package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"market/config"
	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/constants"
	domainerrors "market/internal/domain/errors"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// TokenValidator checks a Google-signed OIDC token for the given audience.
type TokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// PushHandler runs the offer expiry sweep on scheduler ticks delivered by
// Pub/Sub push, or on a direct call in development.
type PushHandler struct {
	verifyPushAuth bool
	allowManual    bool
	validateToken  TokenValidator
	logger         *slog.Logger
	expiryUC       usecase.ExpiryUsecase
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	ExpiryUC usecase.ExpiryUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		allowManual:    params.Config.Env.Env == constants.EnvDevelop,
		validateToken:  idtoken.Validate,
		logger:         params.Logger,
		expiryUC:       params.ExpiryUC,
	}
}

// AllowManualSweep reports whether POST /sweep is exposed.
func (h *PushHandler) AllowManualSweep() bool {
	return h.allowManual
}

// HandlePush handles a scheduler tick delivered as a Pub/Sub push message.
// Retryable failures answer 503 so Pub/Sub redelivers; anything else is
// acknowledged to avoid endless redelivery.
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := h.verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := h.extractRequestID(ctx, &pushMsg)
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Running expiry sweep",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("subscription", pushMsg.Subscription),
	)

	result, err := h.expiryUC.SweepExpired(ctx)
	if err != nil {
		retryable := domainerrors.IsRetryable(err)
		reqLogger.Error("[Worker] Expiry sweep failed",
			slog.Any("error", err),
			slog.Bool("retryable", retryable),
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	return c.JSON(http.StatusOK, result)
}

// HandleSweep runs the sweep on demand and reports the result.
func (h *PushHandler) HandleSweep(c echo.Context) error {
	result, err := h.expiryUC.SweepExpired(c.Request().Context())
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) {
			return c.JSON(appErr.HTTPCode(), map[string]string{"error": appErr.ErrorCode()})
		}

		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "INTERNAL_ERROR"})
	}

	return c.JSON(http.StatusOK, result)
}

// extractRequestID extracts request_id from message attributes, context, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage) string {
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the OIDC token attached by Pub/Sub push.
func (h *PushHandler) verifyPubSubToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// The audience is the URL of this endpoint
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	payload, err := h.validateToken(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
