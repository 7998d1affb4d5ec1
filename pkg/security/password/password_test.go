package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	digest, err := h.Hash("P@ssw0rdOK")
	require.NoError(t, err)
	assert.LessOrEqual(t, len(digest), 60)

	assert.True(t, h.Verify("P@ssw0rdOK", digest))
	assert.False(t, h.Verify("P@ssw0rdKO", digest))
}

func TestHash_RandomSalt(t *testing.T) {
	t.Parallel()

	h := NewHasher(bcrypt.MinCost)

	first, err := h.Hash("S@me-Inpu7")
	require.NoError(t, err)
	second, err := h.Hash("S@me-Inpu7")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, h.Verify("S@me-Inpu7", first))
	assert.True(t, h.Verify("S@me-Inpu7", second))
}

func TestVerify_MalformedDigest(t *testing.T) {
	t.Parallel()

	h := NewHasher(0)
	assert.False(t, h.Verify("whatever", "not-a-bcrypt-digest"))
	assert.False(t, h.Verify("whatever", ""))
}

func TestNewHasher_CostFallback(t *testing.T) {
	t.Parallel()

	assert.Equal(t, bcrypt.DefaultCost, NewHasher(0).cost)
	assert.Equal(t, bcrypt.DefaultCost, NewHasher(99).cost)
	assert.Equal(t, bcrypt.MinCost, NewHasher(bcrypt.MinCost).cost)
}
