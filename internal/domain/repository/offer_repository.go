// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"market/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for offer persistence.
var (
	// ErrOfferNotFound is returned when no offer matches the query.
	ErrOfferNotFound = errors.New("offer not found")
	// ErrOfferVersionConflict is returned by a conditional update when another
	// writer committed first.
	ErrOfferVersionConflict = errors.New("offer version conflict")
	// ErrDuplicateActiveOffer is returned when the store's uniqueness guard
	// rejects a second active offer for the same product and buyer.
	ErrDuplicateActiveOffer = errors.New("active offer already exists")
)

// OfferListFilter narrows ListOffers.
type OfferListFilter struct {
	ParticipantID uuid.UUID
	Role          entity.ParticipantRole
	State         *entity.OfferState
}

// OfferRepository defines offer persistence. Every mutation after creation
// goes through UpdateOfferIfVersion.
type OfferRepository interface {
	// CreateOffer inserts a new offer with version 0.
	CreateOffer(ctx context.Context, offer *entity.Offer) error

	// FindOfferByID retrieves an offer by its unique ID.
	FindOfferByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error)

	// FindOfferByProductAndBuyer returns the most recent offer for the pair
	// whose state is one of states.
	FindOfferByProductAndBuyer(ctx context.Context, productID, buyerID uuid.UUID, states []entity.OfferState) (*entity.Offer, error)

	// ListOffers returns the participant's offers, most recently updated first.
	ListOffers(ctx context.Context, filter OfferListFilter) ([]*entity.Offer, error)

	// UpdateOfferIfVersion overwrites the mutable fields of the offer only if
	// the stored version still equals expectedVersion. On success the stored
	// and in-memory versions become expectedVersion+1.
	UpdateOfferIfVersion(ctx context.Context, offer *entity.Offer, expectedVersion int64) error

	// ExpireOverdueOffers moves every active offer with expires_at <= now to
	// expired and returns how many changed.
	ExpireOverdueOffers(ctx context.Context, now time.Time) (int64, error)
}
