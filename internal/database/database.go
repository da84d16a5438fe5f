package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"stellar-cargo/internal/auth"
	"stellar-cargo/internal/models"

	// PostgreSQL driver
	_ "github.com/jackc/pgx/v5/stdlib"

	// SQLite driver
	_ "modernc.org/sqlite"
)

// Service is a SQL-backed session store.
type Service interface {
	auth.SessionStore

	// Health returns a map of health status information.
	// The keys and values in the map are service-specific.
	Health() map[string]string

	// Close terminates the database connection.
	Close() error

	// DB exposes the pool for migrations.
	DB() *sql.DB
	Dialect() Dialect
}

type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

type Config struct {
	Dialect    Dialect
	Host       string
	Port       string
	Database   string
	Username   string
	Password   string
	Schema     string
	SQLitePath string
}

// DSN renders the connection string for the configured dialect.
func (c Config) DSN() string {
	if c.Dialect == SQLite {
		return fmt.Sprintf("file:%s?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)", c.SQLitePath)
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable&search_path=%s",
		c.Username, c.Password, c.Host, c.Port, c.Database, c.Schema,
	)
}

func (c Config) driverName() string {
	if c.Dialect == SQLite {
		return "sqlite"
	}
	return "pgx"
}

type service struct {
	db      *sql.DB
	dialect Dialect
	name    string
	log     *zap.Logger
}

// New opens the pool and verifies it with a ping.
func New(ctx context.Context, cfg Config, log *zap.Logger) (Service, error) {
	if log == nil {
		log = zap.NewNop()
	}
	switch cfg.Dialect {
	case Postgres:
	case SQLite:
		if cfg.SQLitePath == "" {
			return nil, errors.New("sqlite path is required")
		}
		if err := os.MkdirAll(filepath.Dir(cfg.SQLitePath), 0o755); err != nil {
			return nil, fmt.Errorf("create sqlite dir: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported dialect %q", cfg.Dialect)
	}

	db, err := sql.Open(cfg.driverName(), cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", cfg.Dialect, err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", cfg.Dialect, err)
	}

	name := cfg.Database
	if cfg.Dialect == SQLite {
		name = cfg.SQLitePath
	}
	log.Info("connected to database", zap.String("dialect", string(cfg.Dialect)), zap.String("database", name))
	return &service{db: db, dialect: cfg.Dialect, name: name, log: log}, nil
}

func (s *service) DB() *sql.DB      { return s.db }
func (s *service) Dialect() Dialect { return s.dialect }

// Health checks the health of the database connection by pinging the database.
// It returns a map with keys indicating various health statistics.
func (s *service) Health() map[string]string {
	ctx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	stats := make(map[string]string)

	if err := s.db.PingContext(ctx); err != nil {
		stats["status"] = "down"
		stats["error"] = fmt.Sprintf("db down: %v", err)
		s.log.Error("db down", zap.Error(err))
		return stats
	}

	stats["status"] = "up"
	stats["message"] = "It's healthy"

	dbStats := s.db.Stats()
	stats["open_connections"] = strconv.Itoa(dbStats.OpenConnections)
	stats["in_use"] = strconv.Itoa(dbStats.InUse)
	stats["idle"] = strconv.Itoa(dbStats.Idle)
	stats["wait_count"] = strconv.FormatInt(dbStats.WaitCount, 10)
	stats["wait_duration"] = dbStats.WaitDuration.String()
	stats["max_idle_closed"] = strconv.FormatInt(dbStats.MaxIdleClosed, 10)
	stats["max_lifetime_closed"] = strconv.FormatInt(dbStats.MaxLifetimeClosed, 10)

	if dbStats.OpenConnections > 100 {
		stats["message"] = "The database is experiencing heavy load."
	}

	if dbStats.WaitCount > 1000 {
		stats["message"] = "The database has a high number of wait events, indicating potential bottlenecks."
	}

	return stats
}

func (s *service) Close() error {
	s.log.Info("disconnected from database", zap.String("database", s.name))
	return s.db.Close()
}

func (s *service) Load(ctx context.Context, key string) (models.User, error) {
	query := s.rebind(`
		SELECT user_id, name, email, role, avatar
		FROM sessions
		WHERE session_key = $1
	`)
	var u models.User
	var role string
	err := s.db.QueryRowContext(ctx, query, key).Scan(&u.ID, &u.Name, &u.Email, &role, &u.Avatar)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, auth.ErrNoSession
	}
	if err != nil {
		return models.User{}, fmt.Errorf("load session: %w", err)
	}
	u.Role = models.Role(role)
	return u, nil
}

func (s *service) Save(ctx context.Context, key string, user models.User) error {
	query := s.rebind(`
		INSERT INTO sessions (session_key, user_id, name, email, role, avatar)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (session_key) DO UPDATE SET
			user_id = excluded.user_id,
			name = excluded.name,
			email = excluded.email,
			role = excluded.role,
			avatar = excluded.avatar
	`)
	_, err := s.db.ExecContext(ctx, query,
		key,
		user.ID,
		user.Name,
		user.Email,
		string(user.Role),
		user.Avatar,
	)
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (s *service) Clear(ctx context.Context, key string) error {
	query := s.rebind(`DELETE FROM sessions WHERE session_key = $1`)
	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// rebind turns $N placeholders into ? for SQLite.
func (s *service) rebind(query string) string {
	if s.dialect != SQLite {
		return query
	}
	var b strings.Builder
	b.Grow(len(query))
	for i := 0; i < len(query); i++ {
		if query[i] == '$' && i+1 < len(query) && query[i+1] >= '0' && query[i+1] <= '9' {
			b.WriteByte('?')
			for i+1 < len(query) && query[i+1] >= '0' && query[i+1] <= '9' {
				i++
			}
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}
