package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"stellar-cargo/internal/models"
)

const (
	DefaultPassword   = "spacehack"
	DefaultLoginDelay = 800 * time.Millisecond
)

// Session is the result of a successful login.
type Session struct {
	Token     string      `json:"token"`
	User      models.User `json:"user"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

type Config struct {
	Users    []models.User
	Password string
	Delay    time.Duration
	Secret   []byte
	TokenTTL time.Duration
	Sessions SessionStore
	Logger   *zap.Logger
	// OnAttempt is called after every credential check with its outcome.
	OnAttempt func(success bool)
}

// Gate checks credentials against a fixed user list sharing one password.
type Gate struct {
	users    []models.User
	password string
	delay    time.Duration
}

func NewGate(users []models.User, password string, delay time.Duration) *Gate {
	if password == "" {
		password = DefaultPassword
	}
	if delay < 0 {
		delay = 0
	}
	return &Gate{users: append([]models.User(nil), users...), password: password, delay: delay}
}

// Verify waits out the configured delay, then matches the email
// case-insensitively and the password exactly.
func (g *Gate) Verify(ctx context.Context, email, password string) (models.User, error) {
	if err := g.wait(ctx); err != nil {
		return models.User{}, err
	}
	user, ok := g.lookup(email)
	if !ok || subtle.ConstantTimeCompare([]byte(password), []byte(g.password)) != 1 {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

func (g *Gate) lookup(email string) (models.User, bool) {
	email = strings.TrimSpace(email)
	for _, u := range g.users {
		if strings.EqualFold(u.Email, email) {
			return u, true
		}
	}
	return models.User{}, false
}

func (g *Gate) wait(ctx context.Context) error {
	if g.delay == 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(g.delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Service issues token-backed sessions for users the Gate admits.
type Service struct {
	gate      *Gate
	tokens    *Tokens
	sessions  SessionStore
	log       *zap.Logger
	onAttempt func(bool)
}

func NewService(cfg Config) (*Service, error) {
	tokens, err := NewTokens(cfg.Secret, cfg.TokenTTL)
	if err != nil {
		return nil, err
	}
	if cfg.Sessions == nil {
		cfg.Sessions = NewMemorySessionStore()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Service{
		gate:      NewGate(cfg.Users, cfg.Password, cfg.Delay),
		tokens:    tokens,
		sessions:  cfg.Sessions,
		log:       cfg.Logger,
		onAttempt: cfg.OnAttempt,
	}, nil
}

// Login checks the credentials after the configured delay and opens a session.
// Nothing is persisted when the check fails.
func (s *Service) Login(ctx context.Context, email, password string) (Session, error) {
	user, err := s.gate.Verify(ctx, email, password)
	if errors.Is(err, ErrInvalidCredentials) {
		s.attempt(false)
		s.log.Info("login rejected", zap.String("email", email))
		return Session{}, err
	}
	if err != nil {
		return Session{}, err
	}

	token, claims, err := s.tokens.Issue(user)
	if err != nil {
		return Session{}, err
	}
	if err := s.sessions.Save(ctx, claims.ID, user); err != nil {
		return Session{}, fmt.Errorf("save session: %w", err)
	}
	s.attempt(true)
	s.log.Info("login", zap.String("user", user.ID), zap.String("role", string(user.Role)))
	return Session{Token: token, User: user, ExpiresAt: claims.ExpiresAt.Time}, nil
}

// Authenticate resolves a bearer token to the signed-in user.
func (s *Service) Authenticate(ctx context.Context, token string) (Principal, error) {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return Principal{}, err
	}
	user, err := s.sessions.Load(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, ErrNoSession) {
			return Principal{}, err
		}
		return Principal{}, fmt.Errorf("load session: %w", err)
	}
	return Principal{User: user, SessionID: claims.ID}, nil
}

// Logout clears the session behind token. Logging out twice is not an error.
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := s.tokens.Parse(token)
	if err != nil {
		return err
	}
	if err := s.sessions.Clear(ctx, claims.ID); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.log.Info("logout", zap.String("user", claims.Subject))
	return nil
}

func (s *Service) attempt(success bool) {
	if s.onAttempt != nil {
		s.onAttempt(success)
	}
}
