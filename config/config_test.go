package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feedbook.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	return path
}

// TestLoadDefaults verifies a missing file yields the documented defaults.
func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, BackendDir, cfg.Store.Backend)
	assert.Equal(t, "./data", cfg.Store.Dir)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
version: 1
store:
  backend: mysql
  dsn: user:pass@tcp(localhost)/feedbook
server:
  addr: :9000
  cors_origins:
    - http://localhost:3000
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, BackendMySQL, cfg.Store.Backend)
	assert.Equal(t, "user:pass@tcp(localhost)/feedbook", cfg.Store.DSN)
	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSOrigins)
	assert.NoError(t, cfg.Validate())
}

// TestEnvOverridesFile verifies env vars win over file values.
func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
store:
  backend: dir
  dir: /var/lib/feedbook
server:
  addr: :9000
`)
	t.Setenv("STORE_BACKEND", "memory")
	t.Setenv("PORT", "7070")
	t.Setenv("FE_ORIGINS", "http://a;http://b")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, BackendMemory, cfg.Store.Backend)
	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, []string{"http://a", "http://b"}, cfg.Server.CORSOrigins)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, `store: [not a map`)
	_, err := Load(path)
	assert.Error(t, err)
}

// TestValidate rejects the backends the binary can't start with.
func TestValidate(t *testing.T) {
	cfg := &FileConfig{Store: StoreSection{Backend: "mysql"}}
	assert.Error(t, cfg.Validate(), "mysql without dsn")

	cfg.Store.DSN = "user:pass@tcp(localhost)/feedbook"
	assert.NoError(t, cfg.Validate())

	cfg.Store.Backend = "redis"
	assert.Error(t, cfg.Validate(), "unknown backend")
}
