package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stellar-cargo/internal/fixtures"
	"stellar-cargo/internal/models"
)

func newTestService(t *testing.T, sessions SessionStore) *Service {
	t.Helper()
	svc, err := NewService(Config{
		Users:    fixtures.Users(),
		Secret:   []byte("test-secret"),
		TokenTTL: time.Hour,
		Sessions: sessions,
	})
	require.NoError(t, err)
	return svc
}

func TestLoginSuccess(t *testing.T) {
	sessions := NewMemorySessionStore()
	svc := newTestService(t, sessions)

	sess, err := svc.Login(context.Background(), "john@spacehack.com", "spacehack")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, sess.User.Role)
	assert.Equal(t, "user-001", sess.User.ID)
	assert.NotEmpty(t, sess.Token)

	p, err := svc.Authenticate(context.Background(), sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.User, p.User)
	assert.NotEmpty(t, p.SessionID)
}

func TestLoginEmailIsCaseInsensitive(t *testing.T) {
	svc := newTestService(t, nil)
	sess, err := svc.Login(context.Background(), "Sarah@SpaceHack.com", "spacehack")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAstronaut, sess.User.Role)
}

func TestLoginWrongPasswordPersistsNothing(t *testing.T) {
	sessions := NewMemorySessionStore()
	var outcomes []bool
	svc, err := NewService(Config{
		Users:     fixtures.Users(),
		Secret:    []byte("test-secret"),
		TokenTTL:  time.Hour,
		Sessions:  sessions,
		OnAttempt: func(ok bool) { outcomes = append(outcomes, ok) },
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "john@spacehack.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(context.Background(), "nobody@spacehack.com", "spacehack")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	assert.Empty(t, sessions.sessions)
	assert.Equal(t, []bool{false, false}, outcomes)
}

func TestLoginHonoursContextDuringDelay(t *testing.T) {
	svc, err := NewService(Config{
		Users:    fixtures.Users(),
		Secret:   []byte("test-secret"),
		TokenTTL: time.Hour,
		Delay:    time.Minute,
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = svc.Login(ctx, "john@spacehack.com", "spacehack")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLogoutClearsSession(t *testing.T) {
	svc := newTestService(t, NewMemorySessionStore())
	ctx := context.Background()

	sess, err := svc.Login(ctx, "mike@spacehack.com", "spacehack")
	require.NoError(t, err)
	require.NoError(t, svc.Logout(ctx, sess.Token))
	require.NoError(t, svc.Logout(ctx, sess.Token))

	_, err = svc.Authenticate(ctx, sess.Token)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestAuthenticateRejectsBadTokens(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	_, err := svc.Authenticate(ctx, "")
	assert.ErrorIs(t, err, ErrInvalidToken)
	_, err = svc.Authenticate(ctx, "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other, err := NewTokens([]byte("other-secret"), time.Hour)
	require.NoError(t, err)
	forged, _, err := other.Issue(fixtures.Users()[0])
	require.NoError(t, err)
	_, err = svc.Authenticate(ctx, forged)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewServiceRequiresSecret(t *testing.T) {
	_, err := NewService(Config{TokenTTL: time.Hour})
	assert.Error(t, err)
}

func TestGateVerify(t *testing.T) {
	gate := NewGate(fixtures.Users(), "", 0)

	u, err := gate.Verify(context.Background(), "  MIKE@spacehack.com ", DefaultPassword)
	require.NoError(t, err)
	assert.Equal(t, models.RoleStaff, u.Role)

	_, err = gate.Verify(context.Background(), "mike@spacehack.com", "SPACEHACK")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	custom := NewGate(fixtures.Users(), "hunter2", 0)
	_, err = custom.Verify(context.Background(), "mike@spacehack.com", DefaultPassword)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
