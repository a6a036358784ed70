package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "market/internal/domain/errors"
	mockRepo "market/internal/mocks/repository"
	mockSvc "market/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type expiryServiceFixtures struct {
	service   *expiryService
	offerRepo *mockRepo.MockOfferRepository
	metrics   *mockSvc.MockMetricsRecorder
}

func createTestExpiryService(t *testing.T) expiryServiceFixtures {
	offerRepo := mockRepo.NewMockOfferRepository(t)
	metrics := mockSvc.NewMockMetricsRecorder(t)

	svc := NewExpiryService(ExpiryServiceParams{
		OfferRepo: offerRepo,
		Metrics:   metrics,
		Logger:    newDiscardLogger(),
	}).(*expiryService)
	svc.now = func() time.Time { return testNow }

	return expiryServiceFixtures{service: svc, offerRepo: offerRepo, metrics: metrics}
}

func TestExpiryService_SweepExpired_Success(t *testing.T) {
	fx := createTestExpiryService(t)
	ctx := context.Background()

	fx.offerRepo.EXPECT().ExpireOverdueOffers(ctx, testNow).Return(int64(4), nil)
	fx.metrics.EXPECT().ObserveSweep(int64(4), nil).Return()

	result, err := fx.service.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(4), result.Expired)
	assert.Equal(t, testNow, result.RanAt)
}

func TestExpiryService_SweepExpired_NothingToDo(t *testing.T) {
	fx := createTestExpiryService(t)

	fx.offerRepo.EXPECT().ExpireOverdueOffers(mock.Anything, testNow).Return(int64(0), nil)
	fx.metrics.EXPECT().ObserveSweep(int64(0), nil).Return()

	result, err := fx.service.SweepExpired(context.Background())
	require.NoError(t, err)
	assert.Zero(t, result.Expired)
}

func TestExpiryService_SweepExpired_StoreUnavailable(t *testing.T) {
	fx := createTestExpiryService(t)
	storeErr := domainerrors.ErrStoreUnavailable.WithDetails("i/o timeout")

	fx.offerRepo.EXPECT().ExpireOverdueOffers(mock.Anything, testNow).Return(int64(0), storeErr)
	fx.metrics.EXPECT().ObserveSweep(int64(0), storeErr).Return()

	result, err := fx.service.SweepExpired(context.Background())
	assert.Nil(t, result)
	assert.True(t, domainerrors.IsRetryable(err))
}

func TestExpiryService_SweepExpired_UnexpectedError(t *testing.T) {
	fx := createTestExpiryService(t)
	dbErr := errors.New("relation \"offers\" does not exist")

	fx.offerRepo.EXPECT().ExpireOverdueOffers(mock.Anything, testNow).Return(int64(0), dbErr)
	fx.metrics.EXPECT().ObserveSweep(int64(0), mock.Anything).Return()

	_, err := fx.service.SweepExpired(context.Background())
	require.Error(t, err)
	assert.False(t, domainerrors.IsRetryable(err))
	assert.ErrorIs(t, err, dbErr)
}
