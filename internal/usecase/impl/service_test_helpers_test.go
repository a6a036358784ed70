package impl

import (
	"io"
	"log/slog"
	"time"

	"market/config"
	"market/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(offerTTL time.Duration) *config.Config {
	return &config.Config{
		Offer: &config.OfferConfig{TTL: offerTTL},
	}
}

func newTestUser(active bool) *entity.User {
	id := uuid.New()

	return &entity.User{
		ID:          id,
		DisplayName: "user-" + id.String()[:8],
		Email:       id.String()[:8] + "@example.com",
		Role:        entity.RoleUser,
		IsActive:    active,
	}
}

func newTestProduct(ownerID uuid.UUID) *entity.Product {
	return &entity.Product{
		ID:         uuid.New(),
		Title:      "Vintage bicycle",
		Price:      decimal.RequireFromString("100.00"),
		OwnerID:    ownerID,
		IsActive:   true,
		IsApproved: true,
	}
}

// newTestOffer returns an offer in the given state that expires a day after testNow.
func newTestOffer(buyerID, sellerID uuid.UUID, state entity.OfferState) *entity.Offer {
	return &entity.Offer{
		ID:            uuid.New(),
		ProductID:     uuid.New(),
		BuyerID:       buyerID,
		SellerID:      sellerID,
		InitialAmount: decimal.RequireFromString("80.00"),
		CurrentAmount: decimal.RequireFromString("80.00"),
		ListingPrice:  decimal.RequireFromString("100.00"),
		State:         state,
		Messages:      []entity.OfferMessage{},
		ExpiresAt:     testNow.Add(24 * time.Hour),
		CreatedAt:     testNow.Add(-48 * time.Hour),
		UpdatedAt:     testNow.Add(-48 * time.Hour),
		Version:       2,
	}
}
