package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stellar-cargo/internal/database"
)

func setenv(t *testing.T, kv map[string]string) {
	t.Helper()
	for k, v := range kv {
		t.Setenv(k, v)
	}
}

// unsetenv removes keys for the duration of the test so defaults apply.
func unsetenv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

var managedKeys = []string{
	"PORT", "LOG_LEVEL", "SESSION_BACKEND", "SESSION_DIR", "SQLITE_PATH",
	"AUTH_TOKEN_TTL", "LOGIN_DELAY", "DEMO_PASSWORD", "REFERENCE_POLICY",
	"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "EXPORT_DIR", "EXPORT_S3_BUCKET",
	"MIGRATE_ON_START", "EXPORT_S3_PATH_STYLE",
}

func TestLoadDefaults(t *testing.T) {
	unsetenv(t, managedKeys...)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, SessionMemory, cfg.SessionBackend)
	assert.Equal(t, 12*time.Hour, cfg.AuthTokenTTL)
	assert.Equal(t, 800*time.Millisecond, cfg.LoginDelay)
	assert.Equal(t, "spacehack", cfg.DemoPassword)
	assert.Equal(t, "nullify", cfg.ReferencePolicy)
	assert.False(t, cfg.UsesDatabase())
}

func TestLoadOverrides(t *testing.T) {
	unsetenv(t, managedKeys...)
	setenv(t, map[string]string{
		"PORT":             "9090",
		"SESSION_BACKEND":  "sqlite",
		"SQLITE_PATH":      "/var/lib/cargo/sessions.db",
		"LOGIN_DELAY":      "0s",
		"REFERENCE_POLICY": "keep",
		"RATE_LIMIT_RPS":   "2.5",
		"RATE_LIMIT_BURST": "4",
	})

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, time.Duration(0), cfg.LoginDelay)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.True(t, cfg.UsesDatabase())

	db := cfg.Database()
	assert.Equal(t, database.SQLite, db.Dialect)
	assert.Equal(t, "/var/lib/cargo/sessions.db", db.SQLitePath)
}

func TestLoadRejectsUnknownValues(t *testing.T) {
	cases := map[string]map[string]string{
		"backend": {"SESSION_BACKEND": "redis"},
		"policy":  {"REFERENCE_POLICY": "cascade"},
		"port":    {"PORT": "not-a-number"},
		"ttl":     {"AUTH_TOKEN_TTL": "-1h"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			unsetenv(t, managedKeys...)
			setenv(t, env)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestValidateExportSinks(t *testing.T) {
	cfg := Config{
		Port:            8080,
		SessionBackend:  SessionMemory,
		AuthTokenTTL:    time.Hour,
		RateLimitRPS:    1,
		RateLimitBurst:  1,
		ReferencePolicy: "nullify",
		ExportDir:       "/tmp/exports",
		ExportS3Bucket:  "bucket",
	}
	assert.Error(t, cfg.Validate())

	cfg.ExportS3Bucket = ""
	assert.NoError(t, cfg.Validate())
}

func TestDatabasePostgres(t *testing.T) {
	cfg := Config{SessionBackend: SessionPostgres, DBHost: "db", DBPort: "5433", DBDatabase: "cargo"}
	db := cfg.Database()
	assert.Equal(t, database.Postgres, db.Dialect)
	assert.Equal(t, "db", db.Host)
	assert.Equal(t, "5433", db.Port)
}
