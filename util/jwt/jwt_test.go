package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func TestIssueAndVerify(t *testing.T) {
	tok, err := Issue(secret, "user-1", true, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := NewVerifier(secret).Verify(tok)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.Subject)
	require.True(t, claims.IsAdmin)
}

func TestVerify_MissingToken(t *testing.T) {
	_, err := NewVerifier(secret).Verify("")
	require.ErrorIs(t, err, ErrMissingToken)

	_, err = NewVerifier(secret).Verify("   ")
	require.ErrorIs(t, err, ErrMissingToken)
}

func TestVerify_Garbage(t *testing.T) {
	_, err := NewVerifier(secret).Verify("not.a.jwt")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_WrongKey(t *testing.T) {
	tok, err := Issue("other-secret", "user-1", false, time.Hour)
	require.NoError(t, err)

	_, err = NewVerifier(secret).Verify(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Tampered(t *testing.T) {
	tok, err := Issue(secret, "user-1", false, time.Hour)
	require.NoError(t, err)

	_, err = NewVerifier(secret).Verify(tok + "x")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerify_Expired(t *testing.T) {
	tok, err := Issue(secret, "user-1", false, -time.Minute)
	require.NoError(t, err)

	_, err = NewVerifier(secret).Verify(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}
