// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OfferTTL is how long an offer stays open after creation. Negotiation
// activity never extends it.
const OfferTTL = 72 * time.Hour

// MaxMessageLength is the maximum number of characters in a negotiation message.
const MaxMessageLength = 500

// OfferState is the negotiation state of an offer.
type OfferState string

const (
	// OfferStatePending is the state of a freshly created offer.
	OfferStatePending OfferState = "pending"
	// OfferStateCountered means the seller proposed a different amount.
	OfferStateCountered OfferState = "countered"
	// OfferStateAccepted is terminal: the seller accepted the current amount.
	OfferStateAccepted OfferState = "accepted"
	// OfferStateRejected is terminal: the seller declined.
	OfferStateRejected OfferState = "rejected"
	// OfferStateExpired is terminal: the offer ran past ExpiresAt while active.
	OfferStateExpired OfferState = "expired"
	// OfferStateCancelled is terminal: the buyer withdrew.
	OfferStateCancelled OfferState = "cancelled"
)

// ActiveOfferStates lists the states from which the negotiation can still move.
var ActiveOfferStates = []OfferState{OfferStatePending, OfferStateCountered}

// String returns the string representation of the state.
func (s OfferState) String() string {
	return string(s)
}

// IsValid checks if the state is a known value.
func (s OfferState) IsValid() bool {
	switch s {
	case OfferStatePending, OfferStateCountered, OfferStateAccepted,
		OfferStateRejected, OfferStateExpired, OfferStateCancelled:
		return true
	default:
		return false
	}
}

// IsActive reports whether the state is pending or countered.
func (s OfferState) IsActive() bool {
	return s == OfferStatePending || s == OfferStateCountered
}

// IsTerminal reports whether no further transition is possible.
func (s OfferState) IsTerminal() bool {
	return s.IsValid() && !s.IsActive()
}

// OfferMessage is one entry of the negotiation thread.
type OfferMessage struct {
	AuthorID       uuid.UUID        `json:"author_id"`
	Text           string           `json:"text"`
	ProposedAmount *decimal.Decimal `json:"proposed_amount,omitempty"`
	IsCounterOffer bool             `json:"is_counter_offer"`
	CreatedAt      time.Time        `json:"created_at"`
}

// Offer is a buyer's proposed price for one product listing.
type Offer struct {
	ID            uuid.UUID       `json:"id"`
	ProductID     uuid.UUID       `json:"product_id"`
	BuyerID       uuid.UUID       `json:"buyer_id"`
	SellerID      uuid.UUID       `json:"seller_id"` // Product owner captured at creation.
	InitialAmount decimal.Decimal `json:"initial_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	ListingPrice  decimal.Decimal `json:"listing_price"` // Product price snapshot, display only.
	State         OfferState      `json:"state"`
	Messages      []OfferMessage  `json:"messages"`
	ExpiresAt     time.Time       `json:"expires_at"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Version       int64           `json:"version"` // Incremented by every persisted mutation.
}

// IsSeller reports whether principal is the seller captured on the offer.
func IsSeller(offer *Offer, principal uuid.UUID) bool {
	return offer != nil && principal != uuid.Nil && offer.SellerID == principal
}

// IsBuyer reports whether principal is the buyer who created the offer.
func IsBuyer(offer *Offer, principal uuid.UUID) bool {
	return offer != nil && principal != uuid.Nil && offer.BuyerID == principal
}

// IsParticipant reports whether principal is the buyer or the seller.
func IsParticipant(offer *Offer, principal uuid.UUID) bool {
	return IsBuyer(offer, principal) || IsSeller(offer, principal)
}

// IsOverdue reports whether an active offer has reached its expiry time.
// The sweep queries use the same boundary (expires_at <= now).
func (o Offer) IsOverdue(now time.Time) bool {
	return o.State.IsActive() && !now.Before(o.ExpiresAt)
}

// LastCounterAmount returns the proposed amount of the latest counter-offer
// message, if any.
func (o Offer) LastCounterAmount() (decimal.Decimal, bool) {
	for i := len(o.Messages) - 1; i >= 0; i-- {
		msg := o.Messages[i]
		if msg.IsCounterOffer && msg.ProposedAmount != nil {
			return *msg.ProposedAmount, true
		}
	}

	return decimal.Decimal{}, false
}

// clone returns a copy whose message slice does not alias the receiver's.
func (o Offer) clone() Offer {
	o.Messages = slices.Clone(o.Messages)

	return o
}

// ParticipantRole narrows offer listings to one side of the negotiation.
type ParticipantRole string

const (
	// ParticipantRoleAny lists offers where the principal is buyer or seller.
	ParticipantRoleAny ParticipantRole = "all"
	// ParticipantRoleBuyer lists offers the principal made.
	ParticipantRoleBuyer ParticipantRole = "buyer"
	// ParticipantRoleSeller lists offers the principal received.
	ParticipantRoleSeller ParticipantRole = "seller"
)

// IsValid checks if the role is a known value.
func (r ParticipantRole) IsValid() bool {
	switch r {
	case ParticipantRoleAny, ParticipantRoleBuyer, ParticipantRoleSeller:
		return true
	default:
		return false
	}
}
