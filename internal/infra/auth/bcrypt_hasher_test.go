package auth

import (
	"testing"

	"sparestock/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testHasher() *bcryptHasher {
	// MinCost keeps the test fast; the hashing contract is identical.
	return &bcryptHasher{cost: bcrypt.MinCost}
}

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := testHasher()

	hash, err := hasher.Hash("wrench-set-9")
	require.NoError(t, err)
	assert.NotEqual(t, "wrench-set-9", hash)

	assert.True(t, hasher.Check("wrench-set-9", hash))
	assert.False(t, hasher.Check("wrench-set-0", hash))
}

func TestBcryptHasher_HashIsSalted(t *testing.T) {
	hasher := testHasher()

	first, err := hasher.Hash("same-password")
	require.NoError(t, err)
	second, err := hasher.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestNewBcryptHasher_FallsBackToDefaultCostOnBadConfig(t *testing.T) {
	cfg := &config.Config{Auth: &config.AuthConfig{BcryptCost: 99}}

	hasher, ok := NewBcryptHasher(cfg).(*bcryptHasher)
	require.True(t, ok)
	assert.Equal(t, bcrypt.DefaultCost, hasher.cost)
}
