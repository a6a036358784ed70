package usecase

import (
	"context"

	"market/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateOfferInput holds the buyer's proposal.
type CreateOfferInput struct {
	ProductID uuid.UUID
	Amount    decimal.Decimal
	Message   string
}

// CounterOfferInput holds the seller's revised proposal.
type CounterOfferInput struct {
	Amount  decimal.Decimal
	Message string
}

// OfferListFilter narrows ListOffers to one side or one state.
type OfferListFilter struct {
	Role  entity.ParticipantRole
	State *entity.OfferState
}

// OfferUsecase defines the offer negotiation use cases. The principal is
// always the authenticated caller.
type OfferUsecase interface {
	// CreateOffer opens a negotiation on an available product.
	CreateOffer(ctx context.Context, buyerID uuid.UUID, input *CreateOfferInput) (*entity.Offer, error)

	// ListOffers returns offers where the principal is a participant.
	ListOffers(ctx context.Context, principal uuid.UUID, filter *OfferListFilter) ([]*entity.Offer, error)

	// GetOffer returns a single offer visible to the principal.
	GetOffer(ctx context.Context, principal, offerID uuid.UUID) (*entity.Offer, error)

	// CounterOffer records a seller counter-offer.
	CounterOffer(ctx context.Context, principal, offerID uuid.UUID, input *CounterOfferInput) (*entity.Offer, error)

	// AcceptOffer closes the negotiation at the current amount.
	AcceptOffer(ctx context.Context, principal, offerID uuid.UUID) (*entity.Offer, error)

	// RejectOffer declines the offer with an optional reason.
	RejectOffer(ctx context.Context, principal, offerID uuid.UUID, reason string) (*entity.Offer, error)

	// CancelOffer withdraws the buyer's offer.
	CancelOffer(ctx context.Context, principal, offerID uuid.UUID) (*entity.Offer, error)

	// AddMessage appends a message without changing the offer state.
	AddMessage(ctx context.Context, principal, offerID uuid.UUID, text string) (*entity.Offer, error)
}
