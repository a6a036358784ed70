package postgres

import (
	"context"
	"log/slog"

	"market/internal/domain/repository"
	"market/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type schemaMigrator struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewSchemaMigrator returns a migrator that creates the tables and indexes
// the repositories rely on, including the active-pair partial unique index.
func NewSchemaMigrator(db *gorm.DB, logger *slog.Logger) repository.SchemaMigrator {
	return &schemaMigrator{db: db, logger: logger}
}

func (m *schemaMigrator) Migrate(ctx context.Context) error {
	if err := m.db.WithContext(ctx).AutoMigrate(
		&model.UserModel{},
		&model.ProductModel{},
		&model.OfferModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate postgres schema")
	}

	m.logger.Info("Postgres schema migrated")

	return nil
}
