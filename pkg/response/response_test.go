package response

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOKT(t *testing.T) {
	r := OKT("payload")
	require.Equal(t, APIResponseCodeOK, r.Code)
	require.Equal(t, "ok", r.Message)
	require.Equal(t, "payload", r.Data)
}

func TestErrorT_KnownCodes(t *testing.T) {
	require.Equal(t, "not found", ErrorT[any](APIResponseCodeNotFound, nil).Message)
	require.Equal(t, "conflict", ErrorT[any](APIResponseCodeConflict, nil).Message)
	require.Equal(t, "bad request", ErrorT[any](APIResponseCodeBadRequest, nil).Message)
	require.Equal(t, "unauthorized", ErrorT[any](APIResponseCodeUnauthorized, nil).Message)
	require.Equal(t, "unexpected error", ErrorT[any](APIResponseCodeError, nil).Message)
}
