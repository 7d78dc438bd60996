package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashVerify(t *testing.T) {
	h := NewHasher()

	hash, err := h.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery staple", hash)
	require.True(t, strings.HasPrefix(hash, "$2"))

	require.True(t, h.Verify("correct horse battery staple", hash))
	require.False(t, h.Verify("wrong password", hash))
}

func TestHash_Salted(t *testing.T) {
	h := NewHasher()

	first, err := h.Hash("secret-password")
	require.NoError(t, err)
	second, err := h.Hash("secret-password")
	require.NoError(t, err)

	// Each hash carries its own salt.
	require.NotEqual(t, first, second)
	require.True(t, h.Verify("secret-password", first))
	require.True(t, h.Verify("secret-password", second))
}

func TestVerify_MalformedHashIsFalse(t *testing.T) {
	h := NewHasher()

	require.False(t, h.Verify("anything", ""))
	require.False(t, h.Verify("anything", "not-a-bcrypt-hash"))
}
