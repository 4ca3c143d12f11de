package document

import (
	"context"
	"testing"
	"time"

	"agency/internal/domain/entity"
	"agency/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newMemStore(t))

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	user := entity.NewUser("ava@example.com", "$2a$10$hash", now)
	require.NoError(t, repo.Create(ctx, user))

	found, err := repo.FindByEmail(ctx, "ava@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ava@example.com", found.Email)
	assert.Equal(t, "$2a$10$hash", found.PasswordHash)
	assert.Equal(t, "ava", found.Name)
	assert.True(t, now.Equal(found.CreatedAt))
}

func TestUserRepository_FindByEmail_NotFound(t *testing.T) {
	repo := NewUserRepository(newMemStore(t))

	user, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.Nil(t, user)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_FindByEmail_ExactMatch(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newMemStore(t))
	require.NoError(t, repo.Create(ctx, entity.NewUser("ava@example.com", "hash", time.Now())))

	_, err := repo.FindByEmail(ctx, "AVA@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_Create_Duplicate(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newMemStore(t))

	require.NoError(t, repo.Create(ctx, entity.NewUser("ava@example.com", "first", time.Now())))

	err := repo.Create(ctx, entity.NewUser("ava@example.com", "second", time.Now()))
	assert.ErrorIs(t, err, repository.ErrUserExists)

	found, err := repo.FindByEmail(ctx, "ava@example.com")
	require.NoError(t, err)
	assert.Equal(t, "first", found.PasswordHash)
}

func TestUserRepository_FindByEmail_CorruptRecord(t *testing.T) {
	ctx := context.Background()
	store := newMemStore(t)
	repo := NewUserRepository(store)

	// Written without a password hash, as an older client might have done.
	require.NoError(t, store.Users.Create(ctx, map[string]any{
		"email": "legacy@example.com",
		"name":  "legacy",
	}))

	user, err := repo.FindByEmail(ctx, "legacy@example.com")
	assert.Nil(t, user)
	assert.True(t, errors.Is(err, repository.ErrCorruptRecord))
}
