package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"stellar-cargo/internal/models"
)

// DefaultSessionKey is the fixed key a single-user client keeps its session under.
const DefaultSessionKey = "spaceCargoUser"

// SessionStore persists the signed-in user under a key. Load returns
// ErrNoSession when nothing is stored.
type SessionStore interface {
	Load(ctx context.Context, key string) (models.User, error)
	Save(ctx context.Context, key string, user models.User) error
	Clear(ctx context.Context, key string) error
}

type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.User
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]models.User)}
}

func (m *MemorySessionStore) Load(_ context.Context, key string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.sessions[key]
	if !ok {
		return models.User{}, ErrNoSession
	}
	return u, nil
}

func (m *MemorySessionStore) Save(_ context.Context, key string, user models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[key] = user
	return nil
}

func (m *MemorySessionStore) Clear(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, key)
	return nil
}

// FileSessionStore keeps one JSON document per key in Dir.
type FileSessionStore struct {
	Dir string
}

func (f FileSessionStore) path(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid session key %q", key)
	}
	return filepath.Join(f.Dir, key+".json"), nil
}

func (f FileSessionStore) Load(_ context.Context, key string) (models.User, error) {
	p, err := f.path(key)
	if err != nil {
		return models.User{}, err
	}
	data, err := os.ReadFile(p)
	if errors.Is(err, os.ErrNotExist) {
		return models.User{}, ErrNoSession
	}
	if err != nil {
		return models.User{}, fmt.Errorf("read session: %w", err)
	}
	var u models.User
	if err := json.Unmarshal(data, &u); err != nil {
		return models.User{}, fmt.Errorf("decode session: %w", err)
	}
	return u, nil
}

func (f FileSessionStore) Save(_ context.Context, key string, user models.User) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.MkdirAll(f.Dir, 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	tmp, err := os.CreateTemp(f.Dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("write session: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write session: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("write session: %w", err)
	}
	return os.Rename(tmp.Name(), p)
}

func (f FileSessionStore) Clear(_ context.Context, key string) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}
