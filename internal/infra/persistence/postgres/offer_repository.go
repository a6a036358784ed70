// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"
	"market/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// offerRepository implements the repository.OfferRepository interface.
type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *gorm.DB) repository.OfferRepository {
	return &offerRepository{
		db: db,
	}
}

// CreateOffer inserts a new offer. The partial unique index rejects a second
// active offer for the same product and buyer.
func (repo *offerRepository) CreateOffer(ctx context.Context, offer *entity.Offer) error {
	offerM := fromOfferDomain(offer)
	offerM.Version = 0

	if err := repo.db.WithContext(ctx).Create(offerM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateActiveOffer
		}
		if isNotNullConstraintViolation(err) || isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("offer violates a storage constraint")
		}

		return translateError(err, "failed to create offer")
	}

	offer.Version = offerM.Version
	offer.CreatedAt = offerM.CreatedAt
	offer.UpdatedAt = offerM.UpdatedAt

	return nil
}

// FindOfferByID retrieves an offer by its unique ID.
func (repo *offerRepository) FindOfferByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	var offerM model.OfferModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&offerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, translateError(err, "failed to find offer by ID")
	}

	return toOfferDomain(&offerM), nil
}

// FindOfferByProductAndBuyer returns the latest offer of the pair in one of the given states.
func (repo *offerRepository) FindOfferByProductAndBuyer(ctx context.Context, productID, buyerID uuid.UUID, states []entity.OfferState) (*entity.Offer, error) {
	var offerM model.OfferModel

	if err := repo.db.WithContext(ctx).
		Where("product_id = ? AND buyer_id = ? AND state IN ?", productID, buyerID, stateStrings(states)).
		Order("updated_at DESC").
		First(&offerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, translateError(err, "failed to find offer by product and buyer")
	}

	return toOfferDomain(&offerM), nil
}

// ListOffers returns the participant's offers, most recently updated first.
func (repo *offerRepository) ListOffers(ctx context.Context, filter repository.OfferListFilter) ([]*entity.Offer, error) {
	var offerModels []*model.OfferModel

	query := repo.db.WithContext(ctx).Model(&model.OfferModel{})
	switch filter.Role {
	case entity.ParticipantRoleBuyer:
		query = query.Where("buyer_id = ?", filter.ParticipantID)
	case entity.ParticipantRoleSeller:
		query = query.Where("seller_id = ?", filter.ParticipantID)
	default:
		query = query.Where("buyer_id = ? OR seller_id = ?", filter.ParticipantID, filter.ParticipantID)
	}
	if filter.State != nil {
		query = query.Where("state = ?", filter.State.String())
	}

	if err := query.Order("updated_at DESC").Find(&offerModels).Error; err != nil {
		return nil, translateError(err, "failed to list offers")
	}

	offers := make([]*entity.Offer, 0, len(offerModels))
	for _, offerM := range offerModels {
		offers = append(offers, toOfferDomain(offerM))
	}

	return offers, nil
}

// UpdateOfferIfVersion writes the mutable columns only while the stored
// version still equals expectedVersion.
func (repo *offerRepository) UpdateOfferIfVersion(ctx context.Context, offer *entity.Offer, expectedVersion int64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("id = ? AND version = ?", offer.ID, expectedVersion).
		Updates(map[string]any{
			"current_amount": offer.CurrentAmount,
			"state":          offer.State.String(),
			"messages":       datatypes.NewJSONSlice(fromMessagesDomain(offer.Messages)),
			"updated_at":     offer.UpdatedAt,
			"version":        gorm.Expr("version + 1"),
		})

	if result.Error != nil {
		if isCheckConstraintViolation(result.Error) {
			return domainerrors.ErrValidationFailed.WrapMessage("offer violates a storage constraint")
		}

		return translateError(result.Error, "failed to update offer")
	}

	if result.RowsAffected == 0 {
		return repo.missingOrConflict(ctx, offer.ID)
	}

	offer.Version = expectedVersion + 1

	return nil
}

// missingOrConflict tells a deleted row apart from a stale version.
func (repo *offerRepository) missingOrConflict(ctx context.Context, id uuid.UUID) error {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return translateError(err, "failed to check offer existence")
	}

	if count == 0 {
		return repository.ErrOfferNotFound
	}

	return repository.ErrOfferVersionConflict
}

// ExpireOverdueOffers moves every overdue active offer to expired in one statement.
func (repo *offerRepository) ExpireOverdueOffers(ctx context.Context, now time.Time) (int64, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.OfferModel{}).
		Where("state IN ? AND expires_at <= ?", stateStrings(entity.ActiveOfferStates), now).
		Updates(map[string]any{
			"state":      entity.OfferStateExpired.String(),
			"updated_at": now,
			"version":    gorm.Expr("version + 1"),
		})

	if result.Error != nil {
		return 0, translateError(result.Error, "failed to expire overdue offers")
	}

	return result.RowsAffected, nil
}

func stateStrings(states []entity.OfferState) []string {
	values := make([]string, 0, len(states))
	for _, state := range states {
		values = append(values, state.String())
	}

	return values
}

// --- Mapper Functions ---

// toOfferDomain converts a GORM OfferModel to a domain Offer entity.
func toOfferDomain(data *model.OfferModel) *entity.Offer {
	if data == nil {
		return nil
	}

	messages := make([]entity.OfferMessage, 0, len(data.Messages))
	for _, msg := range data.Messages {
		messages = append(messages, entity.OfferMessage{
			AuthorID:       msg.AuthorID,
			Text:           msg.Text,
			ProposedAmount: msg.ProposedAmount,
			IsCounterOffer: msg.IsCounterOffer,
			CreatedAt:      msg.CreatedAt,
		})
	}

	return &entity.Offer{
		ID:            data.ID,
		ProductID:     data.ProductID,
		BuyerID:       data.BuyerID,
		SellerID:      data.SellerID,
		InitialAmount: data.InitialAmount,
		CurrentAmount: data.CurrentAmount,
		ListingPrice:  data.ListingPrice,
		State:         entity.OfferState(data.State),
		Messages:      messages,
		ExpiresAt:     data.ExpiresAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
		Version:       data.Version,
	}
}

// fromOfferDomain converts a domain Offer entity to a GORM OfferModel.
func fromOfferDomain(data *entity.Offer) *model.OfferModel {
	if data == nil {
		return nil
	}

	return &model.OfferModel{
		ID:            data.ID,
		ProductID:     data.ProductID,
		BuyerID:       data.BuyerID,
		SellerID:      data.SellerID,
		InitialAmount: data.InitialAmount,
		CurrentAmount: data.CurrentAmount,
		ListingPrice:  data.ListingPrice,
		State:         data.State.String(),
		Messages:      datatypes.NewJSONSlice(fromMessagesDomain(data.Messages)),
		ExpiresAt:     data.ExpiresAt,
		Version:       data.Version,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func fromMessagesDomain(messages []entity.OfferMessage) []model.OfferMessageModel {
	models := make([]model.OfferMessageModel, 0, len(messages))
	for _, msg := range messages {
		models = append(models, model.OfferMessageModel{
			AuthorID:       msg.AuthorID,
			Text:           msg.Text,
			ProposedAmount: msg.ProposedAmount,
			IsCounterOffer: msg.IsCounterOffer,
			CreatedAt:      msg.CreatedAt,
		})
	}

	return models
}
