package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewHasher_ClampsCost(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cost int
		want int
	}{
		{"min cost", bcrypt.MinCost, bcrypt.MinCost},
		{"default cost", bcrypt.DefaultCost, bcrypt.DefaultCost},
		{"too low", 0, bcrypt.DefaultCost},
		{"too high", bcrypt.MaxCost + 1, bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, NewHasher(tt.cost).cost)
		})
	}
}

func TestHasher_HashAndCompare(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("password123")
	require.NoError(t, err)

	assert.NotEqual(t, "password123", hash, "hash must differ from plaintext")
	assert.True(t, h.Compare(hash, "password123"))
	assert.False(t, h.Compare(hash, "wrong-password"))

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestHasher_Hash_IsSalted(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	first, err := h.Hash("same-password")
	require.NoError(t, err)
	second, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestHasher_Compare_EmptyHash(t *testing.T) {
	t.Parallel()

	assert.False(t, NewHasher(bcrypt.MinCost).Compare("", "anything"))
}
