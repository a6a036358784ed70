package mongo

import (
	"context"
	"log/slog"

	"market/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const activePairIndex = "idx_offers_active_pair"

type schemaMigrator struct {
	db     *mongo.Database
	logger *slog.Logger
}

// NewSchemaMigrator returns a migrator that creates the indexes the
// repositories rely on.
func NewSchemaMigrator(db *mongo.Database, logger *slog.Logger) repository.SchemaMigrator {
	return &schemaMigrator{db: db, logger: logger}
}

func offerIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "product_id", Value: 1}, {Key: "buyer_id", Value: 1}},
			Options: options.Index().
				SetName(activePairIndex).
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"active": true}),
		},
		{
			Keys:    bson.D{{Key: "state", Value: 1}, {Key: "expires_at", Value: 1}},
			Options: options.Index().SetName("idx_offers_state_expires_at"),
		},
		{
			Keys:    bson.D{{Key: "buyer_id", Value: 1}, {Key: "updated_at", Value: -1}},
			Options: options.Index().SetName("idx_offers_buyer_updated"),
		},
		{
			Keys:    bson.D{{Key: "seller_id", Value: 1}, {Key: "updated_at", Value: -1}},
			Options: options.Index().SetName("idx_offers_seller_updated"),
		},
	}
}

func (m *schemaMigrator) Migrate(ctx context.Context) error {
	names, err := m.db.Collection(offersCollection).Indexes().CreateMany(ctx, offerIndexes())
	if err != nil {
		return errors.Wrap(err, "failed to create offer indexes")
	}

	m.logger.Info("MongoDB indexes ensured", slog.Any("indexes", names))

	return nil
}
