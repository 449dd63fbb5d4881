package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "cdd-audit", cfg.App.Name)
	assert.Equal(t, "info", cfg.App.LogLevel)
	assert.Equal(t, "memory", cfg.Store.Backend)
	assert.Equal(t, 3, cfg.Audit.AuditorCount)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("app:\n  log_level: debug\nstore:\n  backend: postgres\n  dsn: postgres://db:5432/audit\naudit:\n  auditor_count: 5\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.App.LogLevel)
	assert.Equal(t, "postgres", cfg.Store.Backend)
	assert.Equal(t, "postgres://db:5432/audit", cfg.Store.DSN)
	assert.Equal(t, 5, cfg.Audit.AuditorCount)
}

func TestLoad_InvalidBackend(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  backend: cassandra\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate_AuditorCount(t *testing.T) {
	cfg := &Config{Store: StoreConfig{Backend: "memory"}, Audit: AuditConfig{AuditorCount: 0}}
	assert.Error(t, cfg.Validate())
}
