// Package store owns the in-memory station collections and the mutations
// that keep them and the activity log consistent.
package store

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"stellar-cargo/internal/fixtures"
	"stellar-cargo/internal/ids"
	"stellar-cargo/internal/models"
)

// DefaultActorID is recorded on activity entries when the context carries no actor.
const DefaultActorID = "user-001"

// ReferencePolicy decides what happens to id references pointing at a deleted entity.
type ReferencePolicy int

const (
	// ReferenceNullify clears references to deleted entities.
	ReferenceNullify ReferencePolicy = iota
	// ReferenceKeep leaves dangling references in place.
	ReferenceKeep
)

func ParseReferencePolicy(s string) (ReferencePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "nullify":
		return ReferenceNullify, nil
	case "keep":
		return ReferenceKeep, nil
	}
	return ReferenceNullify, fmt.Errorf("unknown reference policy %q", s)
}

func (p ReferencePolicy) String() string {
	if p == ReferenceKeep {
		return "keep"
	}
	return "nullify"
}

// Observer is called after every successful mutation with the entry it produced.
type Observer func(models.ActivityLog)

type Option func(*Store)

func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithIDGenerator(gen func(prefix string) string) Option {
	return func(s *Store) { s.newID = gen }
}

func WithReferencePolicy(p ReferencePolicy) Option {
	return func(s *Store) { s.refs = p }
}

func WithObserver(o Observer) Option {
	return func(s *Store) { s.observers = append(s.observers, o) }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.log = l }
}

// Store is the single process-wide owner of the station data. It is safe
// for concurrent use; mutations are applied one at a time in call order.
type Store struct {
	mu         sync.RWMutex
	cargo      []models.Cargo
	astronauts []models.Astronaut
	modules    []models.Module
	missions   []models.Mission
	logs       []models.ActivityLog // oldest first

	now       func() time.Time
	newID     func(prefix string) string
	refs      ReferencePolicy
	observers []Observer
	log       *zap.Logger
}

// New builds a store seeded with a copy of ds.
func New(ds fixtures.Dataset, opts ...Option) *Store {
	s := &Store{
		cargo:      slices.Clone(ds.Cargo),
		astronauts: slices.Clone(ds.Astronauts),
		modules:    slices.Clone(ds.Modules),
		missions:   make([]models.Mission, 0, len(ds.Missions)),
		logs:       slices.Clone(ds.ActivityLogs),
		now:        func() time.Time { return time.Now().UTC() },
		newID:      ids.New,
		log:        zap.NewNop(),
	}
	for _, m := range ds.Missions {
		s.missions = append(s.missions, m.Clone())
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) ReferencePolicy() ReferencePolicy {
	return s.refs
}

type actorKey struct{}

// WithActor attaches the acting user id recorded on activity entries.
func WithActor(ctx context.Context, userID string) context.Context {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ctx
	}
	return context.WithValue(ctx, actorKey{}, userID)
}

// ActorFromContext returns the acting user id, or DefaultActorID.
func ActorFromContext(ctx context.Context) string {
	if ctx != nil {
		if v, ok := ctx.Value(actorKey{}).(string); ok && v != "" {
			return v
		}
	}
	return DefaultActorID
}

// record appends an activity entry. Callers hold s.mu.
func (s *Store) record(ctx context.Context, action, details string) models.ActivityLog {
	entry := models.ActivityLog{
		ID:        s.newID("log"),
		Action:    action,
		UserID:    ActorFromContext(ctx),
		Timestamp: s.now(),
		Details:   details,
	}
	s.logs = append(s.logs, entry)
	return entry
}

// publish runs after the lock is released.
func (s *Store) publish(entry models.ActivityLog) {
	s.log.Info("audit",
		zap.String("id", entry.ID),
		zap.String("action", entry.Action),
		zap.String("user_id", entry.UserID),
		zap.String("details", entry.Details),
	)
	for _, o := range s.observers {
		o(entry)
	}
}

// ActivityLogs returns the log newest first.
func (s *Store) ActivityLogs() []models.ActivityLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return newestFirst(s.logs)
}

func newestFirst(logs []models.ActivityLog) []models.ActivityLog {
	out := make([]models.ActivityLog, len(logs))
	for i, l := range logs {
		out[len(logs)-1-i] = l
	}
	return out
}

// Snapshot is a consistent copy of every collection taken under one lock.
// ActivityLogs are newest first.
type Snapshot struct {
	Cargo        []models.Cargo
	Astronauts   []models.Astronaut
	Modules      []models.Module
	Missions     []models.Mission
	ActivityLogs []models.ActivityLog
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{
		Cargo:        cloneSlice(s.cargo),
		Astronauts:   cloneSlice(s.astronauts),
		Modules:      cloneSlice(s.modules),
		Missions:     cloneMissions(s.missions),
		ActivityLogs: newestFirst(s.logs),
	}
}

func cloneSlice[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

func cloneMissions(items []models.Mission) []models.Mission {
	out := make([]models.Mission, len(items))
	for i, m := range items {
		out[i] = m.Clone()
	}
	return out
}

func indexByID[T any](items []T, id string, key func(T) string) int {
	for i, item := range items {
		if key(item) == id {
			return i
		}
	}
	return -1
}

func removeAt[T any](items []T, i int) []T {
	return append(items[:i:i], items[i+1:]...)
}

func withoutID(ids []string, id string) []string {
	return slices.DeleteFunc(ids, func(v string) bool { return v == id })
}
