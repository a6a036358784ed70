package mongo

import (
	"context"
	"time"

	"market/internal/domain/entity"
	domainerrors "market/internal/domain/errors"
	"market/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// offerRepository implements the repository.OfferRepository interface.
type offerRepository struct {
	collection *mongo.Collection
}

// NewOfferRepository is the constructor for offerRepository.
func NewOfferRepository(db *mongo.Database) repository.OfferRepository {
	return &offerRepository{
		collection: db.Collection(offersCollection),
	}
}

var byUpdatedAtDesc = bson.D{{Key: "updated_at", Value: -1}}

// CreateOffer inserts a new offer. The partial unique index on active offers
// rejects a second one for the same product and buyer.
func (repo *offerRepository) CreateOffer(ctx context.Context, offer *entity.Offer) error {
	doc, err := fromOfferDomain(offer)
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}
	doc.Version = 0

	if _, err := repo.collection.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return repository.ErrDuplicateActiveOffer
		}

		return translateError(err, "failed to create offer")
	}

	offer.Version = 0

	return nil
}

// FindOfferByID retrieves an offer by its unique ID.
func (repo *offerRepository) FindOfferByID(ctx context.Context, id uuid.UUID) (*entity.Offer, error) {
	return repo.findOne(ctx, bson.M{"_id": id.String()}, nil, "failed to find offer by ID")
}

// FindOfferByProductAndBuyer returns the latest offer of the pair in one of the given states.
func (repo *offerRepository) FindOfferByProductAndBuyer(ctx context.Context, productID, buyerID uuid.UUID, states []entity.OfferState) (*entity.Offer, error) {
	filter := bson.M{
		"product_id": productID.String(),
		"buyer_id":   buyerID.String(),
		"state":      bson.M{"$in": stateStrings(states)},
	}

	return repo.findOne(ctx, filter, options.FindOne().SetSort(byUpdatedAtDesc), "failed to find offer by product and buyer")
}

func (repo *offerRepository) findOne(ctx context.Context, filter bson.M, opts *options.FindOneOptions, details string) (*entity.Offer, error) {
	var doc offerDocument

	findOpts := []*options.FindOneOptions{}
	if opts != nil {
		findOpts = append(findOpts, opts)
	}

	if err := repo.collection.FindOne(ctx, filter, findOpts...).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrOfferNotFound
		}

		return nil, translateError(err, details)
	}

	offer, err := toOfferDomain(&doc)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "stored offer is malformed")
	}

	return offer, nil
}

// ListOffers returns the participant's offers, most recently updated first.
func (repo *offerRepository) ListOffers(ctx context.Context, filter repository.OfferListFilter) ([]*entity.Offer, error) {
	participant := filter.ParticipantID.String()

	query := bson.M{}
	switch filter.Role {
	case entity.ParticipantRoleBuyer:
		query["buyer_id"] = participant
	case entity.ParticipantRoleSeller:
		query["seller_id"] = participant
	default:
		query["$or"] = bson.A{
			bson.M{"buyer_id": participant},
			bson.M{"seller_id": participant},
		}
	}
	if filter.State != nil {
		query["state"] = filter.State.String()
	}

	cursor, err := repo.collection.Find(ctx, query, options.Find().SetSort(byUpdatedAtDesc))
	if err != nil {
		return nil, translateError(err, "failed to list offers")
	}
	defer cursor.Close(ctx)

	var docs []*offerDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, translateError(err, "failed to decode offers")
	}

	offers := make([]*entity.Offer, 0, len(docs))
	for _, doc := range docs {
		offer, err := toOfferDomain(doc)
		if err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "stored offer is malformed")
		}
		offers = append(offers, offer)
	}

	return offers, nil
}

// UpdateOfferIfVersion writes the mutable fields only while the stored
// version still equals expectedVersion.
func (repo *offerRepository) UpdateOfferIfVersion(ctx context.Context, offer *entity.Offer, expectedVersion int64) error {
	doc, err := fromOfferDomain(offer)
	if err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	filter := bson.M{"_id": doc.ID, "version": expectedVersion}
	update := bson.M{
		"$set": bson.M{
			"current_amount": doc.CurrentAmount,
			"state":          doc.State,
			"active":         doc.Active,
			"messages":       doc.Messages,
			"updated_at":     doc.UpdatedAt,
		},
		"$inc": bson.M{"version": 1},
	}

	result, err := repo.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return translateError(err, "failed to update offer")
	}

	if result.MatchedCount == 0 {
		return repo.missingOrConflict(ctx, doc.ID)
	}

	offer.Version = expectedVersion + 1

	return nil
}

// missingOrConflict tells a deleted document apart from a stale version.
func (repo *offerRepository) missingOrConflict(ctx context.Context, id string) error {
	count, err := repo.collection.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return translateError(err, "failed to check offer existence")
	}

	if count == 0 {
		return repository.ErrOfferNotFound
	}

	return repository.ErrOfferVersionConflict
}

// ExpireOverdueOffers moves every overdue active offer to expired in one UpdateMany.
func (repo *offerRepository) ExpireOverdueOffers(ctx context.Context, now time.Time) (int64, error) {
	filter := bson.M{
		"state":      bson.M{"$in": stateStrings(entity.ActiveOfferStates)},
		"expires_at": bson.M{"$lte": now.UTC()},
	}
	update := bson.M{
		"$set": bson.M{
			"state":      entity.OfferStateExpired.String(),
			"active":     false,
			"updated_at": now.UTC(),
		},
		"$inc": bson.M{"version": 1},
	}

	result, err := repo.collection.UpdateMany(ctx, filter, update)
	if err != nil {
		return 0, translateError(err, "failed to expire overdue offers")
	}

	return result.ModifiedCount, nil
}

func stateStrings(states []entity.OfferState) []string {
	values := make([]string, 0, len(states))
	for _, state := range states {
		values = append(values, state.String())
	}

	return values
}
