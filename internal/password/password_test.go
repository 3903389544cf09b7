package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	h, err := Hash("s3cret", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, "s3cret", h)
	assert.True(t, Verify("s3cret", h))
	assert.False(t, Verify("wrong", h))
}

func TestHash_Salted(t *testing.T) {
	a, err := Hash("same", bcrypt.MinCost)
	require.NoError(t, err)
	b, err := Hash("same", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestHash_UsesCost(t *testing.T) {
	h, err := Hash("x", bcrypt.MinCost+1)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(h))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost+1, cost)
}

func TestHash_RejectsInvalidCost(t *testing.T) {
	for _, cost := range []int{0, bcrypt.MinCost - 1, bcrypt.MaxCost + 1} {
		_, err := Hash("x", cost)
		assert.Error(t, err, "cost %d", cost)
	}
}

func TestVerify_MalformedHash(t *testing.T) {
	assert.False(t, Verify("x", "not-a-hash"))
}
