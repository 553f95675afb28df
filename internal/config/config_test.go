package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[database]
host = "localhost"
dbname = "gym"
user = "gym"
password = "secret"

[scheduling]
timezone = "Europe/Moscow"

[locks]
enabled = true
redis_addr = "localhost:6379"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "host=localhost port=5432 user=gym password=secret dbname=gym sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 10*time.Second, cfg.Locks.TTL())
	assert.Equal(t, 500*time.Millisecond, cfg.Locks.Wait())

	loc, err := cfg.Scheduling.Location()
	require.NoError(t, err)
	assert.Equal(t, "Europe/Moscow", loc.String())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{
			name: "missing database",
			body: `[server]
http_port = 8080`,
		},
		{
			name: "bad port",
			body: `[server]
http_port = 70000
[database]
host = "localhost"
dbname = "gym"`,
		},
		{
			name: "unknown timezone",
			body: `[database]
host = "localhost"
dbname = "gym"
[scheduling]
timezone = "Mars/Olympus"`,
		},
		{
			name: "locks without redis",
			body: `[database]
host = "localhost"
dbname = "gym"
[locks]
enabled = true`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestSchedulingLocation_Local(t *testing.T) {
	loc, err := SchedulingConfig{Timezone: "Local"}.Location()
	require.NoError(t, err)
	assert.Equal(t, time.Local, loc)
}
