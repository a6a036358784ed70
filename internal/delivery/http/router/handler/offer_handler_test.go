package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"market/internal/delivery/http/middleware"
	"market/internal/delivery/http/validator"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/service"
	mockSvc "market/internal/mocks/service"
	mockUsecase "market/internal/mocks/usecase"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testToken = "valid-token"

type offerHandlerFixtures struct {
	e       *echo.Echo
	offerUC *mockUsecase.MockOfferUsecase
	userID  uuid.UUID
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Details string `json:"details"`
	} `json:"error"`
}

func createTestOfferHandler(t *testing.T) *offerHandlerFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	offerUC := mockUsecase.NewMockOfferUsecase(t)
	tokenSvc := mockSvc.NewMockTokenService(t)
	userID := uuid.New()

	tokenSvc.EXPECT().ValidateToken(testToken).
		Return(&service.Claims{UserID: userID, Roles: []string{"user"}, Type: "access"}, nil).Maybe()
	tokenSvc.EXPECT().ValidateToken(mock.Anything).
		Return(nil, errors.New("invalid token")).Maybe()

	h := NewOfferHandler(OfferHandlerParams{OfferUC: offerUC, Logger: logger})
	auth := middleware.NewAuthMiddleware(tokenSvc)

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	g := e.Group("/offers", auth.Authenticate)
	g.POST("", h.CreateOffer)
	g.GET("", h.ListOffers)
	g.GET("/:id", h.GetOffer)
	g.POST("/:id/accept", h.AcceptOffer)
	g.POST("/:id/reject", h.RejectOffer)
	g.POST("/:id/counter", h.CounterOffer)
	g.POST("/:id/message", h.AddMessage)
	g.DELETE("/:id", h.CancelOffer)

	return &offerHandlerFixtures{e: e, offerUC: offerUC, userID: userID}
}

func (f *offerHandlerFixtures) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	req.Header.Set("Authorization", "Bearer "+testToken)

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return rec, env
}

func newHandlerTestOffer(buyerID, sellerID uuid.UUID, state entity.OfferState) *entity.Offer {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

	return &entity.Offer{
		ID:            uuid.New(),
		ProductID:     uuid.New(),
		BuyerID:       buyerID,
		SellerID:      sellerID,
		InitialAmount: decimal.RequireFromString("80"),
		CurrentAmount: decimal.RequireFromString("80"),
		ListingPrice:  decimal.RequireFromString("100"),
		State:         state,
		Messages:      []entity.OfferMessage{},
		ExpiresAt:     now.Add(72 * time.Hour),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func TestOfferHandler_CreateOffer(t *testing.T) {
	f := createTestOfferHandler(t)
	productID := uuid.New()
	offer := newHandlerTestOffer(f.userID, uuid.New(), entity.OfferStatePending)

	f.offerUC.EXPECT().
		CreateOffer(mock.Anything, f.userID, mock.MatchedBy(func(in *usecase.CreateOfferInput) bool {
			return in.ProductID == productID && in.Amount.Equal(decimal.RequireFromString("80.00")) && in.Message == "Would you take 80?"
		})).
		Return(offer, nil).Once()

	rec, env := f.do(t, http.MethodPost, "/offers",
		`{"product_id":"`+productID.String()+`","amount":"80.00","message":"Would you take 80?"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)

	var got entity.Offer
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, offer.ID, got.ID)
	assert.Equal(t, entity.OfferStatePending, got.State)
}

func TestOfferHandler_CreateOffer_Validation(t *testing.T) {
	f := createTestOfferHandler(t)

	rec, env := f.do(t, http.MethodPost, "/offers", `{"product_id":"not-a-uuid","amount":0}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "product_id")
	assert.Contains(t, env.Error.Details, "amount is required")
}

func TestOfferHandler_CreateOffer_Conflict(t *testing.T) {
	f := createTestOfferHandler(t)

	f.offerUC.EXPECT().CreateOffer(mock.Anything, f.userID, mock.Anything).
		Return(nil, domainerrors.ErrOfferAlreadyActive).Once()

	rec, env := f.do(t, http.MethodPost, "/offers", `{"product_id":"`+uuid.NewString()+`","amount":50}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "OFFER_ALREADY_ACTIVE", env.Error.Code)
}

func TestOfferHandler_ListOffers(t *testing.T) {
	f := createTestOfferHandler(t)
	offers := []*entity.Offer{newHandlerTestOffer(uuid.New(), f.userID, entity.OfferStateCountered)}

	f.offerUC.EXPECT().
		ListOffers(mock.Anything, f.userID, mock.MatchedBy(func(filter *usecase.OfferListFilter) bool {
			return filter.Role == entity.ParticipantRoleSeller && filter.State != nil && *filter.State == entity.OfferStateCountered
		})).
		Return(offers, nil).Once()

	rec, env := f.do(t, http.MethodGet, "/offers?role=seller&state=countered", "")

	assert.Equal(t, http.StatusOK, rec.Code)

	var got []entity.Offer
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Len(t, got, 1)
}

func TestOfferHandler_ListOffers_DefaultsToAllRoles(t *testing.T) {
	f := createTestOfferHandler(t)

	f.offerUC.EXPECT().
		ListOffers(mock.Anything, f.userID, &usecase.OfferListFilter{Role: entity.ParticipantRoleAny}).
		Return([]*entity.Offer{}, nil).Once()

	rec, _ := f.do(t, http.MethodGet, "/offers", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOfferHandler_ListOffers_InvalidRole(t *testing.T) {
	f := createTestOfferHandler(t)

	rec, env := f.do(t, http.MethodGet, "/offers?role=owner", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestOfferHandler_GetOffer_Forbidden(t *testing.T) {
	f := createTestOfferHandler(t)
	offerID := uuid.New()

	f.offerUC.EXPECT().GetOffer(mock.Anything, f.userID, offerID).
		Return(nil, domainerrors.ErrOfferForbidden).Once()

	rec, env := f.do(t, http.MethodGet, "/offers/"+offerID.String(), "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "OFFER_FORBIDDEN", env.Error.Code)
}

func TestOfferHandler_InvalidOfferID(t *testing.T) {
	f := createTestOfferHandler(t)

	rec, env := f.do(t, http.MethodPost, "/offers/not-a-uuid/accept", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestOfferHandler_AcceptOffer(t *testing.T) {
	f := createTestOfferHandler(t)
	offer := newHandlerTestOffer(uuid.New(), f.userID, entity.OfferStateAccepted)

	f.offerUC.EXPECT().AcceptOffer(mock.Anything, f.userID, offer.ID).Return(offer, nil).Once()

	rec, env := f.do(t, http.MethodPost, "/offers/"+offer.ID.String()+"/accept", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
}

func TestOfferHandler_AcceptOffer_Expired(t *testing.T) {
	f := createTestOfferHandler(t)
	offerID := uuid.New()

	f.offerUC.EXPECT().AcceptOffer(mock.Anything, f.userID, offerID).
		Return(nil, domainerrors.ErrOfferExpired).Once()

	rec, env := f.do(t, http.MethodPost, "/offers/"+offerID.String()+"/accept", "")

	assert.Equal(t, http.StatusGone, rec.Code)
	assert.Equal(t, "OFFER_EXPIRED", env.Error.Code)
}

func TestOfferHandler_RejectOffer(t *testing.T) {
	f := createTestOfferHandler(t)
	offer := newHandlerTestOffer(uuid.New(), f.userID, entity.OfferStateRejected)

	t.Run("with reason", func(t *testing.T) {
		f.offerUC.EXPECT().RejectOffer(mock.Anything, f.userID, offer.ID, "too low").Return(offer, nil).Once()

		rec, _ := f.do(t, http.MethodPost, "/offers/"+offer.ID.String()+"/reject", `{"reason":"too low"}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("without body", func(t *testing.T) {
		f.offerUC.EXPECT().RejectOffer(mock.Anything, f.userID, offer.ID, "").Return(offer, nil).Once()

		rec, _ := f.do(t, http.MethodPost, "/offers/"+offer.ID.String()+"/reject", "")

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestOfferHandler_CounterOffer(t *testing.T) {
	f := createTestOfferHandler(t)
	offer := newHandlerTestOffer(uuid.New(), f.userID, entity.OfferStateCountered)

	f.offerUC.EXPECT().
		CounterOffer(mock.Anything, f.userID, offer.ID, mock.MatchedBy(func(in *usecase.CounterOfferInput) bool {
			return in.Amount.Equal(decimal.RequireFromString("90")) && in.Message == ""
		})).
		Return(offer, nil).Once()

	rec, _ := f.do(t, http.MethodPost, "/offers/"+offer.ID.String()+"/counter", `{"amount":90}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOfferHandler_CounterOffer_InvalidState(t *testing.T) {
	f := createTestOfferHandler(t)
	offerID := uuid.New()

	f.offerUC.EXPECT().CounterOffer(mock.Anything, f.userID, offerID, mock.Anything).
		Return(nil, domainerrors.ErrOfferInvalidState.WithDetails("offer is accepted")).Once()

	rec, env := f.do(t, http.MethodPost, "/offers/"+offerID.String()+"/counter", `{"amount":"95.50"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "OFFER_INVALID_STATE", env.Error.Code)
	assert.Equal(t, "offer is accepted", env.Error.Details)
}

func TestOfferHandler_AddMessage(t *testing.T) {
	f := createTestOfferHandler(t)
	offer := newHandlerTestOffer(f.userID, uuid.New(), entity.OfferStateAccepted)

	f.offerUC.EXPECT().AddMessage(mock.Anything, f.userID, offer.ID, "When can I pick it up?").Return(offer, nil).Once()

	rec, _ := f.do(t, http.MethodPost, "/offers/"+offer.ID.String()+"/message", `{"text":"When can I pick it up?"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOfferHandler_AddMessage_RequiresText(t *testing.T) {
	f := createTestOfferHandler(t)

	rec, env := f.do(t, http.MethodPost, "/offers/"+uuid.NewString()+"/message", `{"text":""}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
}

func TestOfferHandler_CancelOffer(t *testing.T) {
	f := createTestOfferHandler(t)
	offer := newHandlerTestOffer(f.userID, uuid.New(), entity.OfferStateCancelled)

	f.offerUC.EXPECT().CancelOffer(mock.Anything, f.userID, offer.ID).Return(offer, nil).Once()

	rec, _ := f.do(t, http.MethodDelete, "/offers/"+offer.ID.String(), "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestOfferHandler_StoreUnavailableIsRetryable(t *testing.T) {
	f := createTestOfferHandler(t)
	offerID := uuid.New()

	f.offerUC.EXPECT().CancelOffer(mock.Anything, f.userID, offerID).
		Return(nil, errors.Wrap(domainerrors.ErrStoreUnavailable, "connection reset")).Once()

	rec, env := f.do(t, http.MethodDelete, "/offers/"+offerID.String(), "")

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Equal(t, "STORE_UNAVAILABLE", env.Error.Code)
}

func TestOfferHandler_UnexpectedErrorIsInternal(t *testing.T) {
	f := createTestOfferHandler(t)
	offerID := uuid.New()

	f.offerUC.EXPECT().GetOffer(mock.Anything, f.userID, offerID).
		Return(nil, errors.New("boom")).Once()

	rec, env := f.do(t, http.MethodGet, "/offers/"+offerID.String(), "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", env.Error.Code)
	assert.Empty(t, env.Error.Details)
}

func TestOfferHandler_RequiresBearerToken(t *testing.T) {
	f := createTestOfferHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/offers", nil)
	req.Header.Set("Authorization", "Bearer expired")
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/offers", nil)
	rec = httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
