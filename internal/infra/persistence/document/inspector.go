package document

import (
	"context"
	"io"

	"agency/internal/domain/repository"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"gocloud.dev/docstore"
)

type storeInspector struct {
	store *Store
}

// NewStoreInspector exposes diagnostics for the opened document store.
func NewStoreInspector(store *Store) repository.StoreInspector {
	return &storeInspector{store: store}
}

func (i *storeInspector) Backend() string {
	return "docstore/" + i.store.driver
}

func (i *storeInspector) DatabaseName() string {
	return i.store.databaseName
}

// ListCollections asks MongoDB for its collection names. The other drivers
// have no listing call, so each configured collection is probed with a
// one-document query instead.
func (i *storeInspector) ListCollections(ctx context.Context) ([]string, error) {
	if i.store.mongoClient != nil {
		names, err := i.store.mongoClient.Database(i.store.databaseName).ListCollectionNames(ctx, bson.D{})
		if err != nil {
			return nil, errors.Wrap(err, "failed to list collections")
		}

		return names, nil
	}

	probes := []struct {
		name string
		coll *docstore.Collection
	}{
		{name: i.store.userColl, coll: i.store.Users},
		{name: i.store.contactColl, coll: i.store.Contacts},
	}

	names := make([]string, 0, len(probes))
	for _, p := range probes {
		if err := probe(ctx, p.coll); err != nil {
			return nil, errors.Wrapf(err, "failed to query collection %s", p.name)
		}
		names = append(names, p.name)
	}

	return names, nil
}

func probe(ctx context.Context, coll *docstore.Collection) error {
	iter := coll.Query().Limit(1).Get(ctx)
	defer iter.Stop()

	doc := map[string]any{}
	if err := iter.Next(ctx, doc); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}
