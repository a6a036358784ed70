package handler

import (
	"log/slog"
	"net/http"

	"market/internal/delivery/http/middleware"
	"market/internal/delivery/http/response"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OfferHandlerParams holds dependencies for OfferHandler, injected by Fx.
type OfferHandlerParams struct {
	fx.In

	OfferUC usecase.OfferUsecase
	Logger  *slog.Logger
}

// OfferHandler holds dependencies for offer negotiation handlers
type OfferHandler struct {
	offerUC usecase.OfferUsecase
	logger  *slog.Logger
}

// NewOfferHandler is the constructor for OfferHandler
func NewOfferHandler(params OfferHandlerParams) *OfferHandler {
	return &OfferHandler{
		offerUC: params.OfferUC,
		logger:  params.Logger,
	}
}

// CreateOfferRequest represents the request body for making an offer
type CreateOfferRequest struct {
	ProductID string          `json:"product_id" validate:"required,uuid"`
	Amount    decimal.Decimal `json:"amount" validate:"required,gt=0"`
	Message   string          `json:"message" validate:"max=500"`
}

// CounterOfferRequest represents the request body for a seller counter-offer
type CounterOfferRequest struct {
	Amount  decimal.Decimal `json:"amount" validate:"required,gt=0"`
	Message string          `json:"message" validate:"max=500"`
}

// RejectOfferRequest represents the request body for rejecting an offer
type RejectOfferRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

// AddMessageRequest represents the request body for a negotiation message
type AddMessageRequest struct {
	Text string `json:"text" validate:"required,max=500"`
}

// ListOffersQuery represents the query parameters of the offer listing
type ListOffersQuery struct {
	Role  string `query:"role" validate:"omitempty,oneof=all buyer seller"`
	State string `query:"state" validate:"omitempty,oneof=pending countered accepted rejected expired cancelled"`
}

// CreateOffer handles a buyer making an offer on a product
func (h *OfferHandler) CreateOffer(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid offer input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	offer, err := h.offerUC.CreateOffer(c.Request().Context(), userID, &usecase.CreateOfferInput{
		ProductID: uuid.MustParse(req.ProductID),
		Amount:    req.Amount,
		Message:   req.Message,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, offer, "Offer created successfully")
}

// ListOffers handles listing the caller's offers
func (h *OfferHandler) ListOffers(c echo.Context) error {
	userID, err := h.getUserID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var query ListOffersQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid query parameters")
	}

	if err := c.Validate(&query); err != nil {
		return response.HandleAppError(c, err)
	}

	filter := &usecase.OfferListFilter{Role: entity.ParticipantRoleAny}
	if query.Role != "" {
		filter.Role = entity.ParticipantRole(query.Role)
	}
	if query.State != "" {
		state := entity.OfferState(query.State)
		filter.State = &state
	}

	offers, err := h.offerUC.ListOffers(c.Request().Context(), userID, filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offers, "Offers retrieved successfully")
}

// GetOffer handles retrieving a single offer
func (h *OfferHandler) GetOffer(c echo.Context) error {
	userID, offerID, err := h.getUserAndOfferID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	offer, err := h.offerUC.GetOffer(c.Request().Context(), userID, offerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offer, "Offer retrieved successfully")
}

// AcceptOffer handles the seller accepting the current amount
func (h *OfferHandler) AcceptOffer(c echo.Context) error {
	userID, offerID, err := h.getUserAndOfferID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	offer, err := h.offerUC.AcceptOffer(c.Request().Context(), userID, offerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offer, "Offer accepted successfully")
}

// RejectOffer handles the seller declining the offer
func (h *OfferHandler) RejectOffer(c echo.Context) error {
	userID, offerID, err := h.getUserAndOfferID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RejectOfferRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid reject input")
		}
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	offer, err := h.offerUC.RejectOffer(c.Request().Context(), userID, offerID, req.Reason)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offer, "Offer rejected successfully")
}

// CounterOffer handles a seller counter-offer
func (h *OfferHandler) CounterOffer(c echo.Context) error {
	userID, offerID, err := h.getUserAndOfferID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CounterOfferRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid counter-offer input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	offer, err := h.offerUC.CounterOffer(c.Request().Context(), userID, offerID, &usecase.CounterOfferInput{
		Amount:  req.Amount,
		Message: req.Message,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offer, "Counter-offer sent successfully")
}

// AddMessage handles appending a message to the negotiation thread
func (h *OfferHandler) AddMessage(c echo.Context) error {
	userID, offerID, err := h.getUserAndOfferID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AddMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	offer, err := h.offerUC.AddMessage(c.Request().Context(), userID, offerID, req.Text)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offer, "Message sent successfully")
}

// CancelOffer handles the buyer withdrawing the offer
func (h *OfferHandler) CancelOffer(c echo.Context) error {
	userID, offerID, err := h.getUserAndOfferID(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	offer, err := h.offerUC.CancelOffer(c.Request().Context(), userID, offerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, offer, "Offer cancelled successfully")
}

// getUserID extracts the user ID from the context
func (h *OfferHandler) getUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := middleware.UserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized.WithDetails("invalid user ID in token")
	}

	return userID, nil
}

func (h *OfferHandler) getUserAndOfferID(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	userID, err := h.getUserID(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	offerID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid offer ID")
	}

	return userID, offerID, nil
}
