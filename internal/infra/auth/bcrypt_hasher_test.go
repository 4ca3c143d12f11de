package auth

import (
	"strings"
	"testing"

	"agency/config"
	domainerrors "agency/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Lower cost for faster testing
const testCost = bcrypt.MinCost

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	hash, err := hasher.Hash("pw")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, "pw", hash)

	assert.True(t, hasher.Check("pw", hash))
	assert.False(t, hasher.Check("pw2", hash))
	assert.False(t, hasher.Check("", hash))
}

func TestBcryptHasher_SaltDiffersPerCall(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Check("same-password", first))
	assert.True(t, hasher.Check("same-password", second))
}

func TestBcryptHasher_CheckMalformedHash(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	assert.False(t, hasher.Check("pw", ""))
	assert.False(t, hasher.Check("pw", "invalid_hash"))
	assert.False(t, hasher.Check("pw", "$2a$04$short"))
}

func TestBcryptHasher_EmptyPassword(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	hash, err := hasher.Hash("")
	require.NoError(t, err)
	assert.True(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("x", hash))
}

func TestBcryptHasher_PasswordTooLong(t *testing.T) {
	hasher := NewBcryptHasherWithCost(testCost)

	_, err := hasher.Hash(strings.Repeat("a", maxPasswordBytes+1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordTooLong))

	_, err = hasher.Hash(strings.Repeat("a", maxPasswordBytes))
	assert.NoError(t, err)
}

func TestBcryptHasher_CostFromConfig(t *testing.T) {
	hasher := NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 5}})

	hash, err := hasher.Hash("pw")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)
}

func TestNewBcryptHasherWithCost_OutOfRangeFallsBack(t *testing.T) {
	for _, cost := range []int{0, 1, bcrypt.MaxCost + 1} {
		hasher := NewBcryptHasherWithCost(cost).(*bcryptHasher)
		assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
	}

	assert.Equal(t, bcrypt.DefaultCost, NewBcryptHasher(nil).(*bcryptHasher).cost)
}
