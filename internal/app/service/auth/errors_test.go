package auth

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrTokenExpired_IsWrapFriendly(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", ErrTokenExpired)
	require.True(t, errors.Is(err, ErrTokenExpired))
	require.False(t, errors.Is(err, ErrInvalidToken))
}
