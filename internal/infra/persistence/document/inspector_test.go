package document

import (
	"context"
	"testing"
	"time"

	"agency/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreInspector_Mem(t *testing.T) {
	ctx := context.Background()
	store := newMemStore(t)
	inspector := NewStoreInspector(store)

	assert.Equal(t, "docstore/mem", inspector.Backend())
	assert.Empty(t, inspector.DatabaseName())

	names, err := inspector.ListCollections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"agencyuser", "contactmessage"}, names)

	require.NoError(t, NewUserRepository(store).Create(ctx, entity.NewUser("a@x.com", "hash", time.Now())))
	names, err = inspector.ListCollections(ctx)
	require.NoError(t, err)
	assert.Len(t, names, 2)
}

func TestStoreInspector_ClosedCollection(t *testing.T) {
	store := newMemStore(t)
	require.NoError(t, store.Users.Close())

	_, err := NewStoreInspector(store).ListCollections(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "agencyuser")
}
