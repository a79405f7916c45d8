package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, devJWTSecret, cfg.Server.JWTSecret)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Minute, cfg.Redis.HierarchyTTL)
	assert.False(t, cfg.Kafka.Enabled)
	assert.Equal(t, 365, cfg.Audit.RetentionDays)
	assert.Equal(t, 25, cfg.Database.Pool().MaxOpenConns)
}

func TestLoadPrecedence(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	yaml := []byte("server:\n  addr: \":9000\"\n  env: staging\naudit:\n  retention_days: 90\nkafka:\n  brokers: [\"a:9092\", \"b:9092\"]\n")
	path := filepath.Join(dir, "hrms.yaml")
	require.NoError(t, os.WriteFile(path, yaml, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("HRMS_AUDIT_SUMMARY_TOP_N=3\n"), 0o600))

	t.Setenv("HRMS_AUDIT_RETENTION_DAYS", "30")
	t.Setenv("HRMS_SERVER_CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr, "file overrides default")
	assert.Equal(t, 30, cfg.Audit.RetentionDays, "env overrides file")
	assert.Equal(t, 3, cfg.Audit.SummaryTopN, ".env is loaded")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Server.CORSOrigins)
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.Kafka.Publisher().Brokers)

	// godotenv sets the process env; keep it from leaking into other tests.
	t.Cleanup(func() { os.Unsetenv("HRMS_AUDIT_SUMMARY_TOP_N") })
}

func TestLoadRejects(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Run("production without secret", func(t *testing.T) {
		t.Setenv("HRMS_SERVER_ENV", "production")
		_, err := Load("")
		require.Error(t, err)
	})

	t.Run("non-positive retention", func(t *testing.T) {
		t.Setenv("HRMS_AUDIT_RETENTION_DAYS", "0")
		_, err := Load("")
		require.Error(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("server: [unclosed"), 0o600))
		_, err := Load(path)
		require.Error(t, err)
	})
}
