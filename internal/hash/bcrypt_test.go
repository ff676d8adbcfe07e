package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/userauth-server/internal/model"
)

func TestBcrypt_HashCheck_Roundtrip(t *testing.T) {
	t.Parallel()

	h := NewBcrypt(bcrypt.MinCost)

	hashed, err := h.Hash("Str0ngPass!")
	require.NoError(t, err)
	require.NotEmpty(t, hashed)
	require.NotEqual(t, "Str0ngPass!", hashed)

	assert.True(t, h.Check("Str0ngPass!", hashed))
	assert.False(t, h.Check("wrong", hashed))
}

func TestBcrypt_Hash_Salted(t *testing.T) {
	t.Parallel()

	h := NewBcrypt(bcrypt.MinCost)

	first, err := h.Hash("Str0ngPass!")
	require.NoError(t, err)
	second, err := h.Hash("Str0ngPass!")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Check("Str0ngPass!", first))
	assert.True(t, h.Check("Str0ngPass!", second))
}

func TestBcrypt_Check_MalformedHash(t *testing.T) {
	t.Parallel()

	h := NewBcrypt(bcrypt.MinCost)

	assert.False(t, h.Check("Str0ngPass!", ""))
	assert.False(t, h.Check("Str0ngPass!", "not-a-bcrypt-hash"))
}

func TestBcrypt_CostBump_KeepsOldHashesVerifiable(t *testing.T) {
	t.Parallel()

	old := NewBcrypt(bcrypt.MinCost)
	hashed, err := old.Hash("Str0ngPass!")
	require.NoError(t, err)

	bumped := NewBcrypt(bcrypt.MinCost + 1)
	assert.True(t, bumped.Check("Str0ngPass!", hashed))
}

func TestBcrypt_Hash_PasswordTooLong(t *testing.T) {
	t.Parallel()

	h := NewBcrypt(bcrypt.MinCost)

	long := make([]byte, 100)
	for i := range long {
		long[i] = 'a'
	}

	_, err := h.Hash(string(long))
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrHashingUnavailable)
}

func TestNewBcrypt_CostOutOfRange(t *testing.T) {
	t.Parallel()

	h := NewBcrypt(bcrypt.MaxCost + 1)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)

	h = NewBcrypt(0)
	assert.Equal(t, bcrypt.DefaultCost, h.cost)
}
