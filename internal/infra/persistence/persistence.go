// Package persistence selects the store backend named by store.backend and
// provides the repositories built on it.
package persistence

import (
	"log/slog"

	"agency/config"
	"agency/internal/domain/constants"
	"agency/internal/domain/repository"
	"agency/internal/errors"
	"agency/internal/infra/persistence/document"
	"agency/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// Repositories is the set of repositories handed to the usecases.
type Repositories struct {
	fx.Out

	Users     repository.UserRepository
	Contacts  repository.ContactRepository
	Inspector repository.StoreInspector
}

// NewRepositories opens the configured backend. The docstore backend is the default.
func NewRepositories(params Params) (Repositories, error) {
	backend := constants.StoreBackendDocstore
	if params.Config.Store != nil && params.Config.Store.Backend != "" {
		backend = params.Config.Store.Backend
	}

	params.Logger.Info("Initializing store", slog.String("backend", backend))

	switch backend {
	case constants.StoreBackendDocstore:
		store, err := document.New(document.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Users:     document.NewUserRepository(store),
			Contacts:  document.NewContactRepository(store),
			Inspector: document.NewStoreInspector(store),
		}, nil

	case constants.StoreBackendPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lifecycle,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Repositories{}, err
		}

		return Repositories{
			Users:     postgres.NewUserRepository(db),
			Contacts:  postgres.NewContactRepository(db),
			Inspector: postgres.NewStoreInspector(db),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unsupported store backend %q", backend)
	}
}
