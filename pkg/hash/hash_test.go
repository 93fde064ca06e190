package hash

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPassword_CompareRoundtrip(t *testing.T) {
	h, err := Password("s3cret-pass")
	require.NoError(t, err)
	require.NotEqual(t, "s3cret-pass", h)
	require.True(t, Compare(h, "s3cret-pass"))
}

func TestCompare_WrongPassword(t *testing.T) {
	h, err := Password("s3cret-pass")
	require.NoError(t, err)
	require.False(t, Compare(h, "other-pass"))
}

func TestCompare_NotAHash(t *testing.T) {
	require.False(t, Compare("plaintext", "plaintext"))
}
