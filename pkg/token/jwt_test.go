package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIssuer_IssueVerify(t *testing.T) {
	iss := NewIssuer("test-secret", time.Hour)

	tok, err := iss.Issue(42, "ops@example.com", time.Now())
	require.NoError(t, err)

	id, err := iss.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, uint(42), id)
}

func TestIssuer_Verify_WrongSecret(t *testing.T) {
	tok, err := NewIssuer("secret-a", time.Hour).Issue(1, "ops@example.com", time.Now())
	require.NoError(t, err)

	_, err = NewIssuer("secret-b", time.Hour).Verify(tok)
	require.Error(t, err)
}

func TestIssuer_Verify_Expired(t *testing.T) {
	iss := NewIssuer("test-secret", time.Minute)

	tok, err := iss.Issue(7, "ops@example.com", time.Now().Add(-time.Hour))
	require.NoError(t, err)

	_, err = iss.Verify(tok)
	require.Error(t, err)
}

func TestIssuer_Verify_Garbage(t *testing.T) {
	_, err := NewIssuer("test-secret", time.Hour).Verify("not.a.token")
	require.Error(t, err)
}
