package database

import (
	"context"
	"errors"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"stellar-cargo/internal/auth"
	"stellar-cargo/internal/models"
)

var mike = models.User{
	ID:     "user-003",
	Name:   "Mike Technician",
	Email:  "mike@spacehack.com",
	Role:   models.RoleStaff,
	Avatar: "/placeholder.svg",
}

func newMockService(t *testing.T, dialect Dialect) (*service, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &service{db: db, dialect: dialect, log: zap.NewNop()}, mock
}

func TestLoadSession(t *testing.T) {
	s, mock := newMockService(t, Postgres)

	mock.ExpectQuery(regexp.QuoteMeta("FROM sessions")).
		WithArgs("abc").
		WillReturnRows(
			sqlmock.NewRows([]string{"user_id", "name", "email", "role", "avatar"}).
				AddRow(mike.ID, mike.Name, mike.Email, "staff", mike.Avatar),
		)

	got, err := s.Load(context.Background(), "abc")
	require.NoError(t, err)
	assert.Equal(t, mike, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSessionMissing(t *testing.T) {
	s, mock := newMockService(t, Postgres)

	mock.ExpectQuery(regexp.QuoteMeta("FROM sessions")).
		WithArgs("gone").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "email", "role", "avatar"}))

	_, err := s.Load(context.Background(), "gone")
	assert.ErrorIs(t, err, auth.ErrNoSession)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSessionUpserts(t *testing.T) {
	s, mock := newMockService(t, Postgres)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO sessions (session_key, user_id, name, email, role, avatar)") + ".*ON CONFLICT").
		WithArgs("abc", mike.ID, mike.Name, mike.Email, "staff", mike.Avatar).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Save(context.Background(), "abc", mike))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSessionWrapsErrors(t *testing.T) {
	s, mock := newMockService(t, Postgres)

	mock.ExpectExec("INSERT INTO sessions").WillReturnError(errors.New("connection reset"))

	err := s.Save(context.Background(), "abc", mike)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save session")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClearSession(t *testing.T) {
	s, mock := newMockService(t, Postgres)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sessions WHERE session_key = $1")).
		WithArgs("abc").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.Clear(context.Background(), "abc"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteUsesQuestionMarks(t *testing.T) {
	s, mock := newMockService(t, SQLite)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM sessions WHERE session_key = ?")).
		WithArgs("abc").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, s.Clear(context.Background(), "abc"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRebind(t *testing.T) {
	s := &service{dialect: SQLite}
	assert.Equal(t, "VALUES (?, ?, ?)", s.rebind("VALUES ($1, $2, $10)"))
	assert.Equal(t, "price = '$'", s.rebind("price = '$'"))

	pg := &service{dialect: Postgres}
	assert.Equal(t, "VALUES ($1)", pg.rebind("VALUES ($1)"))
}

func TestHealthUp(t *testing.T) {
	s, _ := newMockService(t, Postgres)

	stats := s.Health()
	assert.Equal(t, "up", stats["status"])
	assert.Equal(t, "It's healthy", stats["message"])
	assert.Contains(t, stats, "open_connections")
}

func TestHealthDown(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()
	s := &service{db: db, dialect: Postgres, log: zap.NewNop()}

	mock.ExpectPing().WillReturnError(errors.New("refused"))

	stats := s.Health()
	assert.Equal(t, "down", stats["status"])
	assert.Contains(t, stats["error"], "refused")
}

func TestConfigDSN(t *testing.T) {
	pg := Config{Dialect: Postgres, Host: "db", Port: "5432", Database: "cargo", Username: "u", Password: "p", Schema: "public"}
	assert.Equal(t, "postgres://u:p@db:5432/cargo?sslmode=disable&search_path=public", pg.DSN())

	lite := Config{Dialect: SQLite, SQLitePath: "/tmp/s.db"}
	assert.Contains(t, lite.DSN(), "file:/tmp/s.db?")
}

func TestNewRejectsUnknownDialect(t *testing.T) {
	_, err := New(context.Background(), Config{Dialect: "mysql"}, nil)
	assert.Error(t, err)
}

func TestSQLiteSessionStoreWithMigrations(t *testing.T) {
	ctx := context.Background()
	svc, err := New(ctx, Config{Dialect: SQLite, SQLitePath: filepath.Join(t.TempDir(), "sessions.db")}, nil)
	require.NoError(t, err)
	defer svc.Close()

	require.NoError(t, Migrate(svc, filepath.Join("..", "..", "migrations"), Up))
	require.NoError(t, Migrate(svc, filepath.Join("..", "..", "migrations"), Up))

	_, err = svc.Load(ctx, "k1")
	assert.ErrorIs(t, err, auth.ErrNoSession)

	require.NoError(t, svc.Save(ctx, "k1", mike))
	renamed := mike
	renamed.Name = "Mike T."
	require.NoError(t, svc.Save(ctx, "k1", renamed))

	got, err := svc.Load(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, renamed, got)

	require.NoError(t, svc.Clear(ctx, "k1"))
	_, err = svc.Load(ctx, "k1")
	assert.ErrorIs(t, err, auth.ErrNoSession)
	assert.Equal(t, "up", svc.Health()["status"])
}
