package entity

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	domainerrors "market/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// The functions in this file are the negotiation state machine. They never
// mutate their receiver and perform no I/O; callers persist the returned
// Offer with a conditional write.
//
//	pending   --counter--> countered
//	pending   --accept---> accepted
//	pending   --reject---> rejected
//	pending   --cancel---> cancelled
//	pending   --expire---> expired
//	countered --counter--> countered
//	countered --accept---> accepted
//	countered --reject---> rejected
//	countered --cancel---> cancelled
//	countered --expire---> expired

// NewOfferParams holds the inputs of a new offer.
type NewOfferParams struct {
	ID           uuid.UUID // Generated when Nil.
	ProductID    uuid.UUID
	BuyerID      uuid.UUID
	SellerID     uuid.UUID
	Amount       decimal.Decimal
	ListingPrice decimal.Decimal
	Message      string
	Now          time.Time
	TTL          time.Duration // Defaults to OfferTTL.
}

// NewOffer builds a pending offer. The optional message becomes the first
// entry of the thread.
func NewOffer(params NewOfferParams) (Offer, error) {
	if params.BuyerID == uuid.Nil || params.SellerID == uuid.Nil || params.ProductID == uuid.Nil {
		return Offer{}, domainerrors.ErrValidationFailed.WithDetails("product, buyer and seller are required")
	}
	if params.BuyerID == params.SellerID {
		return Offer{}, domainerrors.ErrOfferForbidden.WithDetails("you cannot make an offer on your own product")
	}
	if err := validateAmount(params.Amount); err != nil {
		return Offer{}, err
	}

	message := strings.TrimSpace(params.Message)
	if err := validateLength(message); err != nil {
		return Offer{}, err
	}

	id := params.ID
	if id == uuid.Nil {
		id = uuid.New()
	}
	ttl := params.TTL
	if ttl <= 0 {
		ttl = OfferTTL
	}

	offer := Offer{
		ID:            id,
		ProductID:     params.ProductID,
		BuyerID:       params.BuyerID,
		SellerID:      params.SellerID,
		InitialAmount: params.Amount,
		CurrentAmount: params.Amount,
		ListingPrice:  params.ListingPrice,
		State:         OfferStatePending,
		Messages:      []OfferMessage{},
		ExpiresAt:     params.Now.Add(ttl),
		CreatedAt:     params.Now,
		UpdatedAt:     params.Now,
	}

	if message != "" {
		amount := params.Amount
		offer.Messages = append(offer.Messages, OfferMessage{
			AuthorID:       params.BuyerID,
			Text:           message,
			ProposedAmount: &amount,
			CreatedAt:      params.Now,
		})
	}

	return offer, nil
}

// Counter records a seller's counter-offer. When the offer is overdue the
// expired offer is returned together with ErrOfferExpired and must be saved.
func (o Offer) Counter(actor uuid.UUID, amount decimal.Decimal, text string, now time.Time) (Offer, error) {
	if !IsSeller(&o, actor) {
		return o, domainerrors.ErrOfferForbidden.WithDetails("only the seller can make a counter-offer")
	}
	if err := o.requireActive(now); err != nil {
		return o.expireOnError(err, now)
	}
	if err := validateAmount(amount); err != nil {
		return o, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		text = fmt.Sprintf("Counter-offer: $%s", amount.StringFixed(2))
	}
	if err := validateLength(text); err != nil {
		return o, err
	}

	next := o.clone()
	proposed := amount
	next.Messages = append(next.Messages, OfferMessage{
		AuthorID:       actor,
		Text:           text,
		ProposedAmount: &proposed,
		IsCounterOffer: true,
		CreatedAt:      now,
	})
	next.CurrentAmount = amount
	next.State = OfferStateCountered
	next.UpdatedAt = now

	return next, nil
}

// Accept closes the negotiation at the current amount. Seller only.
func (o Offer) Accept(actor uuid.UUID, now time.Time) (Offer, error) {
	if !IsSeller(&o, actor) {
		return o, domainerrors.ErrOfferForbidden.WithDetails("only the seller can accept the offer")
	}
	if err := o.requireActive(now); err != nil {
		return o.expireOnError(err, now)
	}

	next := o.clone()
	next.State = OfferStateAccepted
	next.UpdatedAt = now

	return next, nil
}

// Reject declines the offer. Overdue offers the sweep has not reached yet can
// still be rejected.
func (o Offer) Reject(actor uuid.UUID, reason string, now time.Time) (Offer, error) {
	if !IsSeller(&o, actor) {
		return o, domainerrors.ErrOfferForbidden.WithDetails("only the seller can reject the offer")
	}
	if !o.State.IsActive() {
		return o, invalidState(o.State)
	}

	next := o.clone()
	if reason = strings.TrimSpace(reason); reason != "" {
		text := "Offer rejected: " + reason
		if err := validateLength(text); err != nil {
			return o, err
		}
		next.Messages = append(next.Messages, OfferMessage{
			AuthorID:  actor,
			Text:      text,
			CreatedAt: now,
		})
	}
	next.State = OfferStateRejected
	next.UpdatedAt = now

	return next, nil
}

// Cancel withdraws the offer. Buyer only.
func (o Offer) Cancel(actor uuid.UUID, now time.Time) (Offer, error) {
	if !IsBuyer(&o, actor) {
		return o, domainerrors.ErrOfferForbidden.WithDetails("only the buyer can cancel the offer")
	}
	if !o.State.IsActive() {
		return o, invalidState(o.State)
	}

	next := o.clone()
	next.State = OfferStateCancelled
	next.UpdatedAt = now

	return next, nil
}

// AddMessage appends a plain message. Allowed in every state, including
// terminal ones, so participants can keep talking after the outcome.
func (o Offer) AddMessage(actor uuid.UUID, text string, now time.Time) (Offer, error) {
	if !IsParticipant(&o, actor) {
		return o, domainerrors.ErrOfferForbidden.WithDetails("you cannot send messages on this offer")
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return o, domainerrors.ErrValidationFailed.WithDetails("message cannot be empty")
	}
	if err := validateLength(text); err != nil {
		return o, err
	}

	next := o.clone()
	next.Messages = append(next.Messages, OfferMessage{
		AuthorID:  actor,
		Text:      text,
		CreatedAt: now,
	})
	next.UpdatedAt = now

	return next, nil
}

// Expire moves an overdue active offer to expired. The second result is false
// when nothing changed, which makes repeated sweeps harmless.
func (o Offer) Expire(now time.Time) (Offer, bool) {
	if !o.IsOverdue(now) {
		return o, false
	}

	next := o.clone()
	next.State = OfferStateExpired
	next.UpdatedAt = now

	return next, true
}

// requireActive returns ErrOfferInvalidState for terminal offers and
// ErrOfferExpired for overdue active ones.
func (o Offer) requireActive(now time.Time) error {
	if !o.State.IsActive() {
		return invalidState(o.State)
	}
	if o.IsOverdue(now) {
		return domainerrors.ErrOfferExpired
	}

	return nil
}

func (o Offer) expireOnError(err error, now time.Time) (Offer, error) {
	if expired, changed := o.Expire(now); changed {
		return expired, err
	}

	return o, err
}

func invalidState(state OfferState) error {
	return domainerrors.ErrOfferInvalidState.WithDetails("offer is " + state.String())
}

func validateAmount(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainerrors.ErrValidationFailed.WithDetails("amount must be greater than zero")
	}
	if !amount.Equal(amount.Round(2)) {
		return domainerrors.ErrValidationFailed.WithDetails("amount must have at most two decimal places")
	}

	return nil
}

func validateLength(text string) error {
	if utf8.RuneCountInString(text) > MaxMessageLength {
		return domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("message must be at most %d characters", MaxMessageLength))
	}

	return nil
}
