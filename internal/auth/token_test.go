package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stellar-cargo/internal/models"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens, err := NewTokens([]byte("secret"), time.Hour)
	require.NoError(t, err)

	user := models.User{ID: "user-002", Role: models.RoleAstronaut}
	signed, issued, err := tokens.Issue(user)
	require.NoError(t, err)

	claims, err := tokens.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, issued.ID, claims.ID)
	assert.Equal(t, "user-002", claims.Subject)
	assert.Equal(t, models.RoleAstronaut, claims.Role)
	assert.Equal(t, issuer, claims.Issuer)
}

func TestTokenIdsAreUnique(t *testing.T) {
	tokens, err := NewTokens([]byte("secret"), time.Hour)
	require.NoError(t, err)
	_, a, err := tokens.Issue(models.User{ID: "user-001"})
	require.NoError(t, err)
	_, b, err := tokens.Issue(models.User{ID: "user-001"})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestTokenExpired(t *testing.T) {
	tokens, err := NewTokens([]byte("secret"), time.Minute)
	require.NoError(t, err)
	issuedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tokens.now = func() time.Time { return issuedAt }

	signed, _, err := tokens.Issue(models.User{ID: "user-001"})
	require.NoError(t, err)

	tokens.now = func() time.Time { return issuedAt.Add(2 * time.Minute) }
	_, err = tokens.Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewTokensValidation(t *testing.T) {
	_, err := NewTokens(nil, time.Hour)
	assert.Error(t, err)
	_, err = NewTokens([]byte("s"), 0)
	assert.Error(t, err)
}
