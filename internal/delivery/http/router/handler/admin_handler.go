package handler

import (
	"log/slog"
	"net/http"

	"market/internal/delivery/http/response"
	"market/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	ExpiryUC usecase.ExpiryUsecase
	Logger   *slog.Logger
}

// AdminHandler serves operator endpoints.
type AdminHandler struct {
	expiryUC usecase.ExpiryUsecase
	logger   *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		expiryUC: params.ExpiryUC,
		logger:   params.Logger,
	}
}

// SweepExpiredOffers runs one expiry sweep on demand.
func (h *AdminHandler) SweepExpiredOffers(c echo.Context) error {
	result, err := h.expiryUC.SweepExpired(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Expiry sweep completed")
}
