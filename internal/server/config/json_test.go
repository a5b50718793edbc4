package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	t.Setenv("ORGMANAGER_CONFIG", "")

	dir := t.TempDir()
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"endpoint_addr_grpc":      "www.example:9000",
		"storage_backend":         "postgres",
		"mongo_uri":               "mongodb://mongo:27017",
		"mongo_database":          "org_test",
		"database_dsn":            "postgres://x",
		"hasher":                  "argon2id",
		"bcrypt_cost":             11,
		"enforce_secret_strength": true,
		"request_timeout":         "3s",
		"log_level":               "debug",
	})
	partial := writeTempJSON(t, dir, "partial.json", map[string]any{
		"storage_backend": "memory",
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", full}

		cfg := defaults()
		parseJson(&cfg)

		assert.Equal(t, "www.example:9000", cfg.EndpointAddrGRPC)
		assert.Equal(t, "postgres", cfg.StorageBackend)
		assert.Equal(t, "mongodb://mongo:27017", cfg.MongoURI)
		assert.Equal(t, "org_test", cfg.MongoDatabase)
		assert.Equal(t, "postgres://x", cfg.DatabaseDSN)
		assert.Equal(t, "argon2id", cfg.Hasher)
		assert.Equal(t, 11, cfg.BcryptCost)
		assert.True(t, cfg.EnforceSecretStrength)
		assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("missing keys keep current values", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", partial}

		cfg := defaults()
		parseJson(&cfg)

		want := defaults()
		want.StorageBackend = "memory"
		assert.Equal(t, want, cfg)
	})

	t.Run("path from environment", func(t *testing.T) {
		t.Setenv("ORGMANAGER_CONFIG", partial)
		os.Args = []string{"testbin"}

		cfg := defaults()
		parseJson(&cfg)
		assert.Equal(t, "memory", cfg.StorageBackend)
	})

	t.Run("no file -> no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := defaults()
		parseJson(&cfg)
		assert.Equal(t, defaults(), cfg)
	})

	t.Run("invalid JSON -> panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))
		os.Args = []string{"testbin", "-config", bad}

		cfg := defaults()
		require.Panics(t, func() { parseJson(&cfg) })
	})

	t.Run("missing file -> panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", filepath.Join(dir, "nope.json")}

		cfg := defaults()
		require.Panics(t, func() { parseJson(&cfg) })
	})
}
