package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/taskhub/taskhub-api/internal/apperrors"
)

func TestIssueAndParse(t *testing.T) {
	issuer := NewTokenIssuer("secret", "taskhub", time.Hour)

	token, err := issuer.Issue(map[string]any{"sub": "abc", "email": "a@x.com"})
	require.NoError(t, err)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "abc", claims["sub"])
	require.Equal(t, "a@x.com", claims["email"])
	require.Equal(t, "taskhub", claims["iss"])
	require.NotNil(t, claims["exp"])
}

func TestParseRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret", "taskhub", time.Hour).Issue(map[string]any{"sub": "abc"})
	require.NoError(t, err)

	_, err = NewTokenIssuer("other", "taskhub", time.Hour).Parse(token)
	require.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestParseRejectsWrongIssuer(t *testing.T) {
	token, err := NewTokenIssuer("secret", "someone-else", time.Hour).Issue(nil)
	require.NoError(t, err)

	_, err = NewTokenIssuer("secret", "taskhub", time.Hour).Parse(token)
	require.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestParseRejectsExpired(t *testing.T) {
	issuer := NewTokenIssuer("secret", "taskhub", -time.Minute)
	token, err := issuer.Issue(nil)
	require.NoError(t, err)

	_, err = issuer.Parse(token)
	require.True(t, errors.Is(err, apperrors.ErrUnauthorized))
}

func TestPasswordHashVerify(t *testing.T) {
	h := NewPasswordHasher(4)

	digest, err := h.Hash("secret12")
	require.NoError(t, err)
	require.NotEqual(t, "secret12", digest)

	require.True(t, h.Verify("secret12", digest))
	require.False(t, h.Verify("wrong", digest))
}
