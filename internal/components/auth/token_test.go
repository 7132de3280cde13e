package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestIssueAndParse_Success(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")

	tok, err := IssueToken("alice", secret, time.Hour)
	require.NoError(t, err)

	subject, err := ParseSubject(tok, secret)
	require.NoError(t, err)
	require.Equal(t, "alice", subject)
}

func TestParseSubject_ZeroTTL(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := IssueToken("alice", secret, 0)
	require.NoError(t, err)

	_, err = ParseSubject(tok, secret)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseSubject_Expired(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := IssueToken("alice", secret, -1*time.Second)
	require.NoError(t, err)

	_, err = ParseSubject(tok, secret)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseSubject_WrongSecret(t *testing.T) {
	t.Parallel()

	tok, err := IssueToken("alice", []byte("right-secret"), time.Hour)
	require.NoError(t, err)

	_, err = ParseSubject(tok, []byte("wrong-secret"))
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseSubject_Malformed(t *testing.T) {
	t.Parallel()

	_, err := ParseSubject("not.a.jwt", []byte("k"))
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseSubject_EmptySubject(t *testing.T) {
	t.Parallel()

	secret := []byte("secret")

	tok, err := IssueToken("", secret, time.Hour)
	require.NoError(t, err)

	_, err = ParseSubject(tok, secret)
	require.ErrorIs(t, err, ErrInvalidToken)
}
