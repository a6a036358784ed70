package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/entity"
	"market/internal/domain/repository"
	"market/internal/domain/service"

	"github.com/google/uuid"
)

const fallbackProductTitle = "your listing"

// offerNotifier turns committed offer events into e-mail notices. Every
// failure is logged and swallowed.
type offerNotifier struct {
	sender      service.NotificationSender
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

func newOfferNotifier(
	sender service.NotificationSender,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) *offerNotifier {
	return &offerNotifier{
		sender:      sender,
		userRepo:    userRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// Notify addresses the participant who did not cause the event.
func (n *offerNotifier) Notify(ctx context.Context, eventType string, offer *entity.Offer) {
	if n.sender == nil || offer == nil {
		return
	}

	recipientID, ok := recipientOf(eventType, offer)
	if !ok {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(ctx, n.logger).With(
		slog.String("offerID", offer.ID.String()),
		slog.String("eventType", eventType),
	)

	recipient, err := n.userRepo.FindUserByID(ctx, recipientID)
	if err != nil {
		logger.Warn("Skipping offer notification, recipient lookup failed", slog.Any("error", err))

		return
	}
	if strings.TrimSpace(recipient.Email) == "" {
		logger.Debug("Skipping offer notification, recipient has no email")

		return
	}

	title := fallbackProductTitle
	if product, err := n.productRepo.FindProductByID(ctx, offer.ProductID); err == nil && product.Title != "" {
		title = product.Title
	}

	mail := composeOfferMail(eventType, offer, recipient, title)
	if _, err := n.sender.Send(ctx, mail); err != nil {
		logger.Warn("Failed to send offer notification", slog.Any("error", err))
	}
}

// recipientOf maps each event to the participant who should hear about it.
func recipientOf(eventType string, offer *entity.Offer) (uuid.UUID, bool) {
	switch eventType {
	case service.OfferEventCreated, service.OfferEventCancelled:
		return offer.SellerID, true
	case service.OfferEventCountered, service.OfferEventAccepted, service.OfferEventRejected, service.OfferEventExpired:
		return offer.BuyerID, true
	default:
		return uuid.Nil, false
	}
}

func composeOfferMail(eventType string, offer *entity.Offer, recipient *entity.User, title string) *service.Mail {
	amount := "$" + offer.CurrentAmount.StringFixed(2)
	greeting := "Hello"
	if recipient.DisplayName != "" {
		greeting = "Hello " + recipient.DisplayName
	}

	var subject, body string
	switch eventType {
	case service.OfferEventCreated:
		subject = "New offer on " + title
		body = fmt.Sprintf("You received an offer of %s for %s (listed at $%s). It expires on %s.",
			amount, title, offer.ListingPrice.StringFixed(2), offer.ExpiresAt.UTC().Format("Jan 2, 2006 15:04 MST"))
	case service.OfferEventCountered:
		subject = "Counter-offer on " + title
		body = fmt.Sprintf("The seller answered your offer for %s with %s.", title, amount)
	case service.OfferEventAccepted:
		subject = "Your offer was accepted"
		body = fmt.Sprintf("The seller accepted %s for %s.", amount, title)
	case service.OfferEventRejected:
		subject = "Your offer was rejected"
		body = fmt.Sprintf("The seller declined your offer for %s.", title)
	case service.OfferEventCancelled:
		subject = "An offer was withdrawn"
		body = fmt.Sprintf("The buyer withdrew the offer of %s for %s.", amount, title)
	case service.OfferEventExpired:
		subject = "Your offer expired"
		body = fmt.Sprintf("Your offer of %s for %s expired without an answer.", amount, title)
	}

	return &service.Mail{
		To:      recipient.Email,
		Subject: subject,
		Body:    greeting + ",\n\n" + body + "\n",
	}
}
