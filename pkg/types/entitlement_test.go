package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApprovalStatus_Valid(t *testing.T) {
	require.True(t, ApprovalStatusYes.Valid())
	require.True(t, ApprovalStatusNo.Valid())
	require.False(t, ApprovalStatus("maybe").Valid())
	require.False(t, ApprovalStatus("").Valid())
}
