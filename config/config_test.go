package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"TABIMAP_DATA_DIR", "TABIMAP_SERVER_PORT", "PORT", "TABIMAP_DB_DRIVER",
		"TABIMAP_STATE_BACKEND", "TABIMAP_STATE_KEY", "TABIMAP_ARCHIVE_DIR", "TABIMAP_REDIS_DB",
	} {
		t.Setenv(key, "")
	}

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(".", "data"), cfg.DataDir)
	assert.Equal(t, "3001", cfg.Port)
	assert.Equal(t, DriverSQLite, cfg.DBDriver)
	assert.Equal(t, StateBackendFile, cfg.StateBackend)
	assert.Equal(t, DefaultStateKey, cfg.StateKey)
	assert.Equal(t, filepath.Join("data", "exports"), cfg.ArchiveDir)
	assert.Equal(t, "*", cfg.CORSOrigin)
}

func TestNewConfigPortFallback(t *testing.T) {
	t.Setenv("TABIMAP_SERVER_PORT", "")
	t.Setenv("PORT", "4000")

	cfg, err := NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "4000", cfg.Port)

	t.Setenv("TABIMAP_SERVER_PORT", "5000")
	cfg, err = NewConfig()
	require.NoError(t, err)
	assert.Equal(t, "5000", cfg.Port)
}

func TestNewConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"Unknown driver", map[string]string{"TABIMAP_DB_DRIVER": "mysql"}},
		{"Postgres without URL", map[string]string{"TABIMAP_DB_DRIVER": "postgres", "TABIMAP_DATABASE_URL": ""}},
		{"Unknown state backend", map[string]string{"TABIMAP_STATE_BACKEND": "memcached"}},
		{"Invalid redis db", map[string]string{"TABIMAP_REDIS_DB": "abc"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := NewConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("TABIMAP_TEST_DOTENV=loaded\n"), 0o644))
	t.Setenv("TABIMAP_TEST_DOTENV", "")
	os.Unsetenv("TABIMAP_TEST_DOTENV")

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "loaded", os.Getenv("TABIMAP_TEST_DOTENV"))

	// 存在しないファイルはエラーにしないこと
	assert.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))
}
