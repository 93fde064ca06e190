package subscriber

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrActivePackage_IsWrapFriendly(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", ErrActivePackage)
	require.True(t, errors.Is(err, ErrActivePackage))
}

func TestErrEmailTaken_IsWrapFriendly(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", ErrEmailTaken)
	require.True(t, errors.Is(err, ErrEmailTaken))
}
