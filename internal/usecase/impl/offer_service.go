// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"market/config"
	deliverycontext "market/internal/delivery/context"
	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/domain/service"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maxMutationAttempts bounds the optimistic read-transition-write loop.
const maxMutationAttempts = 3

const (
	transitionCreate  = "create"
	transitionCounter = "counter"
	transitionAccept  = "accept"
	transitionReject  = "reject"
	transitionCancel  = "cancel"
	transitionMessage = "message"
	transitionExpire  = "expire"
)

// offerService implements the OfferUsecase interface.
type offerService struct {
	offerRepo   repository.OfferRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
	notifier    *offerNotifier
	publisher   service.EventPublisher
	metrics     service.MetricsRecorder
	offerTTL    time.Duration
	now         func() time.Time
	logger      *slog.Logger
}

// OfferServiceParams holds dependencies for OfferService, injected by Fx.
type OfferServiceParams struct {
	fx.In

	OfferRepo   repository.OfferRepository
	ProductRepo repository.ProductRepository
	UserRepo    repository.UserRepository
	Sender      service.NotificationSender
	Publisher   service.EventPublisher
	Metrics     service.MetricsRecorder
	Config      *config.Config
	Logger      *slog.Logger
}

// NewOfferService is the constructor for offerService.
func NewOfferService(params OfferServiceParams) usecase.OfferUsecase {
	offerTTL := entity.OfferTTL
	if params.Config != nil && params.Config.Offer != nil && params.Config.Offer.TTL > 0 {
		offerTTL = params.Config.Offer.TTL
	}

	return &offerService{
		offerRepo:   params.OfferRepo,
		productRepo: params.ProductRepo,
		userRepo:    params.UserRepo,
		notifier:    newOfferNotifier(params.Sender, params.UserRepo, params.ProductRepo, params.Logger),
		publisher:   params.Publisher,
		metrics:     params.Metrics,
		offerTTL:    offerTTL,
		now:         time.Now,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *offerService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOffer validates the buyer and the product, then inserts a pending offer.
func (srv *offerService) CreateOffer(ctx context.Context, buyerID uuid.UUID, input *usecase.CreateOfferInput) (*entity.Offer, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("offer input is required")
	}

	offer, err := srv.createOffer(ctx, buyerID, input)
	srv.observe(transitionCreate, err)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Offer created",
		slog.String("offerID", offer.ID.String()),
		slog.String("productID", offer.ProductID.String()),
		slog.String("amount", offer.CurrentAmount.StringFixed(2)),
	)
	srv.afterCommit(ctx, service.OfferEventCreated, offer)

	return offer, nil
}

func (srv *offerService) createOffer(ctx context.Context, buyerID uuid.UUID, input *usecase.CreateOfferInput) (*entity.Offer, error) {
	buyer, err := srv.userRepo.FindUserByID(ctx, buyerID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return nil, domainerrors.ErrUserNotFound
	}
	if err != nil {
		return nil, storeError(err, "failed to find buyer")
	}
	if !buyer.IsActive {
		return nil, domainerrors.ErrUserInactive
	}

	product, err := srv.productRepo.FindProductByID(ctx, input.ProductID)
	if errors.Is(err, repository.ErrProductNotFound) {
		return nil, domainerrors.ErrProductNotFound
	}
	if err != nil {
		return nil, storeError(err, "failed to find product")
	}
	if !product.IsAvailable() {
		return nil, domainerrors.ErrProductUnavailable
	}
	if product.OwnerID == buyerID {
		return nil, domainerrors.ErrOfferForbidden.WithDetails("you cannot make an offer on your own product")
	}

	now := srv.now()
	if err := srv.ensureNoActiveOffer(ctx, product.ID, buyerID, now); err != nil {
		return nil, err
	}

	offer, err := entity.NewOffer(entity.NewOfferParams{
		ProductID:    product.ID,
		BuyerID:      buyerID,
		SellerID:     product.OwnerID,
		Amount:       input.Amount,
		ListingPrice: product.Price,
		Message:      input.Message,
		Now:          now,
		TTL:          srv.offerTTL,
	})
	if err != nil {
		return nil, err
	}

	err = srv.offerRepo.CreateOffer(ctx, &offer)
	if errors.Is(err, repository.ErrDuplicateActiveOffer) {
		return nil, domainerrors.ErrOfferAlreadyActive
	}
	if err != nil {
		return nil, storeError(err, "failed to create offer")
	}

	return &offer, nil
}

// ensureNoActiveOffer rejects a second active offer for the pair. An overdue
// offer the sweep has not reached yet is expired here instead of blocking.
func (srv *offerService) ensureNoActiveOffer(ctx context.Context, productID, buyerID uuid.UUID, now time.Time) error {
	existing, err := srv.offerRepo.FindOfferByProductAndBuyer(ctx, productID, buyerID, entity.ActiveOfferStates)
	if errors.Is(err, repository.ErrOfferNotFound) {
		return nil
	}
	if err != nil {
		return storeError(err, "failed to check active offers")
	}

	expired, changed := existing.Expire(now)
	if !changed {
		return domainerrors.ErrOfferAlreadyActive
	}

	// A lost race here leaves the unique index to decide.
	err = srv.offerRepo.UpdateOfferIfVersion(ctx, &expired, existing.Version)
	if err != nil && !errors.Is(err, repository.ErrOfferVersionConflict) {
		return storeError(err, "failed to expire overdue offer")
	}
	if err == nil {
		srv.observe(transitionExpire, nil)
		srv.afterCommit(ctx, service.OfferEventExpired, &expired)
	}

	return nil
}

// ListOffers returns the principal's offers filtered by side and state.
func (srv *offerService) ListOffers(ctx context.Context, principal uuid.UUID, filter *usecase.OfferListFilter) ([]*entity.Offer, error) {
	repoFilter := repository.OfferListFilter{
		ParticipantID: principal,
		Role:          entity.ParticipantRoleAny,
	}
	if filter != nil {
		if filter.Role != "" {
			if !filter.Role.IsValid() {
				return nil, domainerrors.ErrValidationFailed.WithDetails("role must be one of all, buyer, seller")
			}
			repoFilter.Role = filter.Role
		}
		if filter.State != nil {
			if !filter.State.IsValid() {
				return nil, domainerrors.ErrValidationFailed.WithDetails("unknown offer state")
			}
			repoFilter.State = filter.State
		}
	}

	offers, err := srv.offerRepo.ListOffers(ctx, repoFilter)
	if err != nil {
		return nil, storeError(err, "failed to list offers")
	}

	return offers, nil
}

// GetOffer returns the offer when the principal takes part in it.
func (srv *offerService) GetOffer(ctx context.Context, principal, offerID uuid.UUID) (*entity.Offer, error) {
	offer, err := srv.loadOffer(ctx, offerID)
	if err != nil {
		return nil, err
	}
	if !entity.IsParticipant(offer, principal) {
		return nil, domainerrors.ErrOfferForbidden.WithDetails("you do not take part in this offer")
	}

	return offer, nil
}

// CounterOffer records a seller counter-offer and notifies the buyer.
func (srv *offerService) CounterOffer(ctx context.Context, principal, offerID uuid.UUID, input *usecase.CounterOfferInput) (*entity.Offer, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("counter-offer input is required")
	}

	offer, err := srv.mutate(ctx, offerID, transitionCounter, func(current entity.Offer, now time.Time) (entity.Offer, error) {
		return current.Counter(principal, input.Amount, input.Message, now)
	})
	if err != nil {
		return nil, err
	}

	srv.afterCommit(ctx, service.OfferEventCountered, offer)

	return offer, nil
}

// AcceptOffer closes the negotiation at the current amount.
func (srv *offerService) AcceptOffer(ctx context.Context, principal, offerID uuid.UUID) (*entity.Offer, error) {
	offer, err := srv.mutate(ctx, offerID, transitionAccept, func(current entity.Offer, now time.Time) (entity.Offer, error) {
		return current.Accept(principal, now)
	})
	if err != nil {
		return nil, err
	}

	srv.afterCommit(ctx, service.OfferEventAccepted, offer)

	return offer, nil
}

// RejectOffer declines the offer and records the optional reason.
func (srv *offerService) RejectOffer(ctx context.Context, principal, offerID uuid.UUID, reason string) (*entity.Offer, error) {
	offer, err := srv.mutate(ctx, offerID, transitionReject, func(current entity.Offer, now time.Time) (entity.Offer, error) {
		return current.Reject(principal, reason, now)
	})
	if err != nil {
		return nil, err
	}

	srv.afterCommit(ctx, service.OfferEventRejected, offer)

	return offer, nil
}

// CancelOffer withdraws the buyer's offer.
func (srv *offerService) CancelOffer(ctx context.Context, principal, offerID uuid.UUID) (*entity.Offer, error) {
	offer, err := srv.mutate(ctx, offerID, transitionCancel, func(current entity.Offer, now time.Time) (entity.Offer, error) {
		return current.Cancel(principal, now)
	})
	if err != nil {
		return nil, err
	}

	srv.afterCommit(ctx, service.OfferEventCancelled, offer)

	return offer, nil
}

// AddMessage appends a message to the thread. No notification is sent.
func (srv *offerService) AddMessage(ctx context.Context, principal, offerID uuid.UUID, text string) (*entity.Offer, error) {
	offer, err := srv.mutate(ctx, offerID, transitionMessage, func(current entity.Offer, now time.Time) (entity.Offer, error) {
		return current.AddMessage(principal, text, now)
	})
	if err != nil {
		return nil, err
	}

	srv.publish(ctx, service.OfferEventMessage, offer)

	return offer, nil
}

type transitionFunc func(current entity.Offer, now time.Time) (entity.Offer, error)

// mutate loads the offer, applies the transition and writes it back only if
// nobody else wrote in between. On a version conflict the transition is
// re-applied to the fresh copy, so the loser of two racing terminal
// transitions sees the winner's state and fails with InvalidState.
func (srv *offerService) mutate(ctx context.Context, offerID uuid.UUID, transition string, apply transitionFunc) (*entity.Offer, error) {
	for attempt := 1; attempt <= maxMutationAttempts; attempt++ {
		current, err := srv.loadOffer(ctx, offerID)
		if err != nil {
			srv.observe(transition, err)

			return nil, err
		}

		next, applyErr := apply(*current, srv.now())
		if applyErr != nil {
			if !errors.Is(applyErr, domainerrors.ErrOfferExpired) || next.State != entity.OfferStateExpired {
				srv.observe(transition, applyErr)

				return nil, applyErr
			}

			persisted, err := srv.persistExpiry(ctx, &next, current.Version)
			if err != nil {
				srv.observe(transition, err)

				return nil, err
			}
			if !persisted {
				continue
			}
			srv.observe(transition, applyErr)

			return nil, applyErr
		}

		err = srv.offerRepo.UpdateOfferIfVersion(ctx, &next, current.Version)
		if errors.Is(err, repository.ErrOfferVersionConflict) {
			srv.log(ctx).Debug("Offer version conflict, retrying",
				slog.String("offerID", offerID.String()),
				slog.String("transition", transition),
				slog.Int("attempt", attempt),
			)

			continue
		}
		if err != nil {
			err = storeError(err, "failed to update offer")
			srv.observe(transition, err)

			return nil, err
		}

		srv.observe(transition, nil)
		srv.log(ctx).Info("Offer updated",
			slog.String("offerID", offerID.String()),
			slog.String("transition", transition),
			slog.String("state", next.State.String()),
			slog.Int64("version", next.Version),
		)

		return &next, nil
	}

	srv.observe(transition, domainerrors.ErrOfferConcurrentUpdate)

	return nil, domainerrors.ErrOfferConcurrentUpdate
}

// persistExpiry saves an offer the transition found overdue. It reports false
// when another writer got there first and the caller should re-read.
func (srv *offerService) persistExpiry(ctx context.Context, expired *entity.Offer, expectedVersion int64) (bool, error) {
	err := srv.offerRepo.UpdateOfferIfVersion(ctx, expired, expectedVersion)
	if errors.Is(err, repository.ErrOfferVersionConflict) {
		return false, nil
	}
	if err != nil {
		return false, storeError(err, "failed to expire offer")
	}

	srv.observe(transitionExpire, nil)
	srv.log(ctx).Info("Offer expired on access", slog.String("offerID", expired.ID.String()))
	srv.afterCommit(ctx, service.OfferEventExpired, expired)

	return true, nil
}

func (srv *offerService) loadOffer(ctx context.Context, offerID uuid.UUID) (*entity.Offer, error) {
	offer, err := srv.offerRepo.FindOfferByID(ctx, offerID)
	if errors.Is(err, repository.ErrOfferNotFound) {
		return nil, domainerrors.ErrOfferNotFound
	}
	if err != nil {
		return nil, storeError(err, "failed to find offer")
	}

	return offer, nil
}

// afterCommit runs the best-effort side effects of a committed transition.
// They outlive the request, so cancellation of ctx does not stop them.
func (srv *offerService) afterCommit(ctx context.Context, eventType string, offer *entity.Offer) {
	ctx = context.WithoutCancel(ctx)
	srv.notifier.Notify(ctx, eventType, offer)
	srv.publish(ctx, eventType, offer)
}

func (srv *offerService) publish(ctx context.Context, eventType string, offer *entity.Offer) {
	if srv.publisher == nil {
		return
	}

	event := &service.OfferEvent{
		RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
		EventID:       uuid.New().String(),
		EventType:     eventType,
		OfferID:       offer.ID.String(),
		ProductID:     offer.ProductID.String(),
		BuyerID:       offer.BuyerID.String(),
		SellerID:      offer.SellerID.String(),
		State:         offer.State.String(),
		CurrentAmount: offer.CurrentAmount.StringFixed(2),
		Version:       offer.Version,
		OccurredAt:    offer.UpdatedAt,
	}

	if err := srv.publisher.PublishOfferEvent(context.WithoutCancel(ctx), event); err != nil {
		srv.log(ctx).Warn("Failed to publish offer event",
			slog.String("offerID", event.OfferID),
			slog.String("eventType", eventType),
			slog.Any("error", err),
		)
	}
}

func (srv *offerService) observe(transition string, err error) {
	if srv.metrics == nil {
		return
	}
	srv.metrics.ObserveTransition(transition, outcomeOf(err))
}

func outcomeOf(err error) string {
	var appErr domainerrors.AppError

	switch {
	case err == nil:
		return service.OutcomeSuccess
	case errors.Is(err, domainerrors.ErrOfferExpired):
		return service.OutcomeExpired
	case errors.Is(err, domainerrors.ErrOfferConcurrentUpdate), errors.Is(err, domainerrors.ErrOfferAlreadyActive):
		return service.OutcomeConflict
	case errors.As(err, &appErr) && appErr.HTTPCode() < 500:
		return service.OutcomeRejected
	default:
		return service.OutcomeError
	}
}

// storeError keeps retryable store failures recognisable and wraps the rest.
func storeError(err error, details string) error {
	if domainerrors.IsRetryable(err) {
		return err
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
