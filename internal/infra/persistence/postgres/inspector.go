package postgres

import (
	"context"

	"agency/internal/domain/constants"
	"agency/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type storeInspector struct {
	db *gorm.DB
}

// NewStoreInspector exposes diagnostics for the Postgres backend.
func NewStoreInspector(db *gorm.DB) repository.StoreInspector {
	return &storeInspector{db: db}
}

func (i *storeInspector) Backend() string {
	return constants.StoreBackendPostgres
}

// DatabaseName asks the server which database the pool is connected to.
func (i *storeInspector) DatabaseName() string {
	return i.db.Migrator().CurrentDatabase()
}

// ListCollections returns the tables visible in the current schema.
func (i *storeInspector) ListCollections(ctx context.Context) ([]string, error) {
	tables, err := i.db.WithContext(ctx).Migrator().GetTables()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tables")
	}

	return tables, nil
}
