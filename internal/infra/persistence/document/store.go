// Package document implements the persistence layer on gocloud.dev/docstore.
// Users are keyed by email and contact messages by id, so the store itself
// rejects a second user with the same email.
package document

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"agency/config"
	"agency/internal/domain/constants"
	"agency/internal/errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/fx"
	"gocloud.dev/docstore"
	"gocloud.dev/docstore/gcpfirestore"
	"gocloud.dev/docstore/memdocstore"
	"gocloud.dev/docstore/mongodocstore"
)

const (
	userKeyField    = "email"
	contactKeyField = "id"
)

// Store holds the opened collections and whatever client backs them.
type Store struct {
	Users    *docstore.Collection
	Contacts *docstore.Collection

	driver       string
	databaseName string
	userColl     string
	contactColl  string

	// mongoClient is set only for the mongo driver.
	mongoClient *mongo.Client
}

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured docstore driver and closes it when the app stops.
func New(params Params) (*Store, error) {
	ctx := context.Background()

	store, err := Open(ctx, params.Config)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Document store opened",
		slog.String("driver", store.driver),
		slog.String("database", store.databaseName),
	)
	if store.driver == constants.DocstoreDriverMem && params.Config.Env.Env != constants.EnvLocal {
		params.Logger.Warn("In-memory document store in use, data is lost on restart",
			slog.String("env", params.Config.Env.Env),
		)
	}

	params.Append(fx.Hook{
		OnStop: func(stopCtx context.Context) error {
			return store.Close(stopCtx)
		},
	})

	return store, nil
}

// Open connects to the docstore driver selected by store.driver.
func Open(ctx context.Context, cfg *config.Config) (*Store, error) {
	storeCfg := cfg.Store
	store := &Store{
		driver:       storeCfg.Driver,
		databaseName: storeCfg.DatabaseName,
		userColl:     storeCfg.Collections.Users,
		contactColl:  storeCfg.Collections.Contacts,
	}
	if store.driver == "" {
		store.driver = constants.DocstoreDriverMem
	}

	var err error
	switch store.driver {
	case constants.DocstoreDriverMem:
		err = store.openMem()
	case constants.DocstoreDriverMongo:
		err = store.openMongo(ctx, storeCfg.URL)
	case constants.DocstoreDriverFirestore:
		err = store.openFirestore(ctx, storeCfg.ProjectID)
	default:
		return nil, errors.Errorf("unsupported docstore driver %q", store.driver)
	}
	if err != nil {
		_ = store.Close(ctx)

		return nil, err
	}

	return store, nil
}

func (s *Store) openMem() error {
	var err error
	if s.Users, err = memdocstore.OpenCollection(userKeyField, nil); err != nil {
		return errors.Wrap(err, "failed to open in-memory users collection")
	}
	if s.Contacts, err = memdocstore.OpenCollection(contactKeyField, nil); err != nil {
		return errors.Wrap(err, "failed to open in-memory contacts collection")
	}

	return nil
}

func (s *Store) openMongo(ctx context.Context, uri string) error {
	if uri == "" {
		return errors.New("store.url is required for the mongo driver")
	}
	if s.databaseName == "" {
		return errors.New("store.databaseName is required for the mongo driver")
	}

	client, err := mongodocstore.Dial(ctx, uri)
	if err != nil {
		return errors.Wrap(err, "failed to create MongoDB client")
	}
	s.mongoClient = client

	db := client.Database(s.databaseName)
	if s.Users, err = mongodocstore.OpenCollection(db.Collection(s.userColl), userKeyField, nil); err != nil {
		return errors.Wrap(err, "failed to open users collection")
	}
	if s.Contacts, err = mongodocstore.OpenCollection(db.Collection(s.contactColl), contactKeyField, nil); err != nil {
		return errors.Wrap(err, "failed to open contacts collection")
	}

	return nil
}

// openFirestore goes through the default URL mux, which resolves Google
// application default credentials.
func (s *Store) openFirestore(ctx context.Context, projectID string) error {
	if projectID == "" {
		return errors.New("store.projectId is required for the firestore driver")
	}

	var err error
	if s.Users, err = docstore.OpenCollection(ctx, firestoreURL(projectID, s.userColl, userKeyField)); err != nil {
		return errors.Wrap(err, "failed to open users collection")
	}
	if s.Contacts, err = docstore.OpenCollection(ctx, firestoreURL(projectID, s.contactColl, contactKeyField)); err != nil {
		return errors.Wrap(err, "failed to open contacts collection")
	}

	return nil
}

func firestoreURL(projectID, collection, nameField string) string {
	return fmt.Sprintf("%s://projects/%s/databases/(default)/documents/%s?name_field=%s",
		gcpfirestore.Scheme, projectID, collection, url.QueryEscape(nameField))
}

// Close releases the collections and disconnects the mongo client, if any.
func (s *Store) Close(ctx context.Context) error {
	var errs []error
	for _, coll := range []*docstore.Collection{s.Users, s.Contacts} {
		if coll == nil {
			continue
		}
		if err := coll.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	if s.mongoClient != nil {
		if err := s.mongoClient.Disconnect(ctx); err != nil {
			errs = append(errs, errors.Wrap(err, "failed to disconnect MongoDB client"))
		}
	}

	return errors.Join(errs...)
}
