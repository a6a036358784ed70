// Package persistence selects the store backing the repositories.
package persistence

import (
	"log/slog"

	"market/config"
	"market/internal/domain/constants"
	"market/internal/domain/repository"
	"market/internal/infra/metrics"
	mongostore "market/internal/infra/persistence/mongo"
	"market/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the repositories, injected by Fx
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Recorder `optional:"true"`
}

// Repositories is the repository set of the configured store.
type Repositories struct {
	fx.Out

	Offers   repository.OfferRepository
	Users    repository.UserRepository
	Products repository.ProductRepository
	Migrator repository.SchemaMigrator
}

// NewRepositories connects to the store named by store.driver and builds its
// repositories. Postgres is the default.
func NewRepositories(params Params) (Repositories, error) {
	driver := constants.StoreDriverPostgres
	if params.Config.Store != nil && params.Config.Store.Driver != "" {
		driver = params.Config.Store.Driver
	}

	switch driver {
	case constants.StoreDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}
		params.Logger.Info("Using PostgreSQL store")

		if params.Metrics != nil {
			sqlDB, err := db.DB()
			if err != nil {
				return Repositories{}, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
			}
			if err := params.Metrics.RegisterDBStats(sqlDB, "postgres"); err != nil {
				return Repositories{}, err
			}
		}

		return Repositories{
			Offers:   postgres.NewOfferRepository(db),
			Users:    postgres.NewUserRepository(db),
			Products: postgres.NewProductRepository(db),
			Migrator: postgres.NewSchemaMigrator(db, params.Logger),
		}, nil

	case constants.StoreDriverMongo:
		db, err := mongostore.New(mongostore.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}
		params.Logger.Info("Using MongoDB store")

		return Repositories{
			Offers:   mongostore.NewOfferRepository(db),
			Users:    mongostore.NewUserRepository(db),
			Products: mongostore.NewProductRepository(db),
			Migrator: mongostore.NewSchemaMigrator(db, params.Logger),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown store driver: %s", driver)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRepositories),
)
