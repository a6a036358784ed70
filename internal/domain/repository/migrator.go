package repository

import "context"

// SchemaMigrator prepares tables, collections and indexes of the active store.
type SchemaMigrator interface {
	Migrate(ctx context.Context) error
}
