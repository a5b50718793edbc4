package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expected    Config
		expectPanic bool
	}{
		{
			name: "all flags",
			args: []string{"cmd",
				"-a", "127.0.0.1:9090", "-s", "postgres", "-m", "mongodb://m:27017", "-n", "org",
				"-d", "db", "-x", "argon2id", "-k", "12", "-w", "-t", "2", "-l", "warn",
			},
			expected: Config{
				EndpointAddrGRPC:      "127.0.0.1:9090",
				StorageBackend:        "postgres",
				MongoURI:              "mongodb://m:27017",
				MongoDatabase:         "org",
				DatabaseDSN:           "db",
				Hasher:                "argon2id",
				BcryptCost:            12,
				EnforceSecretStrength: true,
				RequestTimeout:        2 * time.Second,
				LogLevel:              "warn",
			},
		},
		{
			name: "unknown flags are ignored",
			args: []string{"cmd", "-c", "cfg.json", "-a", ":7000"},
			expected: func() Config {
				c := defaults()
				c.EndpointAddrGRPC = ":7000"
				return c
			}(),
		},
		{
			name:        "bad int panics",
			args:        []string{"cmd", "-k", "ten"},
			expectPanic: true,
		},
	}

	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args
			config := defaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(&config) })
				return
			}
			require.NotPanics(t, func() { parseFlags(&config) })
			assert.Empty(t, cmp.Diff(tt.expected, config))
		})
	}
}

func TestParseFlags_KeepsSubSecondTimeoutWithoutFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })
	os.Args = []string{"cmd", "-a", ":1"}

	config := defaults()
	config.RequestTimeout = 1500 * time.Millisecond
	parseFlags(&config)

	assert.Equal(t, 1500*time.Millisecond, config.RequestTimeout)
}
