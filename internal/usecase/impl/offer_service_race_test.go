package impl

import (
	"context"
	"slices"
	"sync"
	"testing"
	"time"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryOfferRepository is a version-checked in-memory store used to drive
// real races through the service.
type memoryOfferRepository struct {
	mu     sync.Mutex
	offers map[uuid.UUID]entity.Offer
}

func newMemoryOfferRepository(offers ...*entity.Offer) *memoryOfferRepository {
	repo := &memoryOfferRepository{offers: make(map[uuid.UUID]entity.Offer)}
	for _, offer := range offers {
		repo.offers[offer.ID] = copyOffer(*offer)
	}

	return repo
}

func copyOffer(offer entity.Offer) entity.Offer {
	offer.Messages = slices.Clone(offer.Messages)

	return offer
}

func (r *memoryOfferRepository) CreateOffer(_ context.Context, offer *entity.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.offers {
		if existing.ProductID == offer.ProductID && existing.BuyerID == offer.BuyerID && existing.State.IsActive() {
			return repository.ErrDuplicateActiveOffer
		}
	}
	r.offers[offer.ID] = copyOffer(*offer)

	return nil
}

func (r *memoryOfferRepository) FindOfferByID(_ context.Context, id uuid.UUID) (*entity.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	offer, ok := r.offers[id]
	if !ok {
		return nil, repository.ErrOfferNotFound
	}
	found := copyOffer(offer)

	return &found, nil
}

func (r *memoryOfferRepository) FindOfferByProductAndBuyer(_ context.Context, productID, buyerID uuid.UUID, states []entity.OfferState) (*entity.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, offer := range r.offers {
		if offer.ProductID == productID && offer.BuyerID == buyerID && slices.Contains(states, offer.State) {
			found := copyOffer(offer)

			return &found, nil
		}
	}

	return nil, repository.ErrOfferNotFound
}

func (r *memoryOfferRepository) ListOffers(_ context.Context, filter repository.OfferListFilter) ([]*entity.Offer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var offers []*entity.Offer
	for _, offer := range r.offers {
		if entity.IsParticipant(&offer, filter.ParticipantID) {
			found := copyOffer(offer)
			offers = append(offers, &found)
		}
	}

	return offers, nil
}

func (r *memoryOfferRepository) UpdateOfferIfVersion(_ context.Context, offer *entity.Offer, expectedVersion int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.offers[offer.ID]
	if !ok {
		return repository.ErrOfferNotFound
	}
	if stored.Version != expectedVersion {
		return repository.ErrOfferVersionConflict
	}
	offer.Version = expectedVersion + 1
	r.offers[offer.ID] = copyOffer(*offer)

	return nil
}

func (r *memoryOfferRepository) ExpireOverdueOffers(_ context.Context, now time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var expired int64
	for id, offer := range r.offers {
		if next, changed := offer.Expire(now); changed {
			next.Version++
			r.offers[id] = next
			expired++
		}
	}

	return expired, nil
}

func newRaceOfferService(repo repository.OfferRepository) *offerService {
	svc := NewOfferService(OfferServiceParams{
		OfferRepo: repo,
		Config:    newTestConfig(0),
		Logger:    newDiscardLogger(),
	}).(*offerService)
	svc.now = func() time.Time { return testNow }

	return svc
}

// runConcurrently releases every fn at the same moment and waits for all.
func runConcurrently(fns ...func()) {
	var ready, done sync.WaitGroup
	start := make(chan struct{})
	for _, fn := range fns {
		ready.Add(1)
		done.Add(1)
		go func() {
			defer done.Done()
			ready.Done()
			<-start
			fn()
		}()
	}
	ready.Wait()
	close(start)
	done.Wait()
}

func TestOfferService_ConcurrentAcceptAndCancel_ExactlyOneWins(t *testing.T) {
	for i := 0; i < 50; i++ {
		buyerID, sellerID := uuid.New(), uuid.New()
		stored := newTestOffer(buyerID, sellerID, entity.OfferStatePending)
		repo := newMemoryOfferRepository(stored)
		svc := newRaceOfferService(repo)
		ctx := context.Background()

		var acceptErr, cancelErr error
		runConcurrently(
			func() { _, acceptErr = svc.AcceptOffer(ctx, sellerID, stored.ID) },
			func() { _, cancelErr = svc.CancelOffer(ctx, buyerID, stored.ID) },
		)

		final, err := repo.FindOfferByID(ctx, stored.ID)
		require.NoError(t, err)

		switch {
		case acceptErr == nil:
			assert.ErrorIs(t, cancelErr, domainerrors.ErrOfferInvalidState)
			assert.Equal(t, entity.OfferStateAccepted, final.State)
		case cancelErr == nil:
			assert.ErrorIs(t, acceptErr, domainerrors.ErrOfferInvalidState)
			assert.Equal(t, entity.OfferStateCancelled, final.State)
		default:
			t.Fatalf("both transitions failed: accept=%v cancel=%v", acceptErr, cancelErr)
		}
		assert.Equal(t, stored.Version+1, final.Version)
	}
}

func TestOfferService_ConcurrentMessages_NoLostUpdate(t *testing.T) {
	buyerID, sellerID := uuid.New(), uuid.New()
	stored := newTestOffer(buyerID, sellerID, entity.OfferStateCountered)
	repo := newMemoryOfferRepository(stored)
	svc := newRaceOfferService(repo)
	ctx := context.Background()

	var buyerErr, sellerErr error
	runConcurrently(
		func() { _, buyerErr = svc.AddMessage(ctx, buyerID, stored.ID, "from buyer") },
		func() { _, sellerErr = svc.AddMessage(ctx, sellerID, stored.ID, "from seller") },
	)
	require.NoError(t, buyerErr)
	require.NoError(t, sellerErr)

	final, err := repo.FindOfferByID(ctx, stored.ID)
	require.NoError(t, err)
	require.Len(t, final.Messages, 2)
	texts := []string{final.Messages[0].Text, final.Messages[1].Text}
	assert.ElementsMatch(t, []string{"from buyer", "from seller"}, texts)
	assert.Equal(t, entity.OfferStateCountered, final.State)
}

func TestOfferService_SweepThenAccept(t *testing.T) {
	buyerID, sellerID := uuid.New(), uuid.New()
	stored := newTestOffer(buyerID, sellerID, entity.OfferStatePending)
	stored.ExpiresAt = testNow.Add(-time.Minute)
	repo := newMemoryOfferRepository(stored)
	svc := newRaceOfferService(repo)
	expiry := NewExpiryService(ExpiryServiceParams{OfferRepo: repo, Logger: newDiscardLogger()}).(*expiryService)
	expiry.now = func() time.Time { return testNow }
	ctx := context.Background()

	result, err := expiry.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Expired)

	again, err := expiry.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, again.Expired)

	_, err = svc.AcceptOffer(ctx, sellerID, stored.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOfferInvalidState)

	// The pair is free again once the old offer expired.
	fresh, err := repo.FindOfferByProductAndBuyer(ctx, stored.ProductID, buyerID, entity.ActiveOfferStates)
	assert.Nil(t, fresh)
	assert.ErrorIs(t, err, repository.ErrOfferNotFound)
}

func TestOfferService_LazyExpiryWithoutSweep(t *testing.T) {
	buyerID, sellerID := uuid.New(), uuid.New()
	stored := newTestOffer(buyerID, sellerID, entity.OfferStateCountered)
	stored.ExpiresAt = testNow.Add(-time.Second)
	repo := newMemoryOfferRepository(stored)
	svc := newRaceOfferService(repo)
	ctx := context.Background()

	_, err := svc.AcceptOffer(ctx, sellerID, stored.ID)
	assert.ErrorIs(t, err, domainerrors.ErrOfferExpired)

	final, err := repo.FindOfferByID(ctx, stored.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.OfferStateExpired, final.State)

	_, err = svc.CounterOffer(ctx, sellerID, stored.ID, &usecase.CounterOfferInput{Amount: stored.CurrentAmount})
	assert.ErrorIs(t, err, domainerrors.ErrOfferInvalidState)
}
