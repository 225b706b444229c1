package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	c, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000", c.API.BaseURL)
	assert.Equal(t, 10*time.Second, c.API.HTTPTimeout)
	assert.Equal(t, "session", c.API.SessionCookieName)
	assert.Equal(t, 500*time.Millisecond, c.Dashboard.SearchDebounce)
	assert.Equal(t, "8080", c.HTTP.Port)
	assert.Equal(t, time.Hour, c.RateLimit.Window)
	assert.Equal(t, 5, c.RateLimit.TicketsPerIP)
	assert.Equal(t, 3, c.RateLimit.TicketsPerMail)
	assert.Empty(t, c.Telemetry.Endpoint)
}

func TestLoadConfig_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[api]
base_url = "https://helpdesk.internal"
http_timeout = "3s"

[dashboard]
search_debounce = "250ms"

[http]
port = "9000"
allowed_origins = ["https://help.example.com"]

[rate_limit]
tickets_per_ip = 10
`), 0o600))

	t.Setenv("HELPDESK_SESSION", "s3cr3t")
	t.Setenv("HTTP__PORT", "9100")
	t.Setenv("LOG_LEVEL", "-4")

	c, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "https://helpdesk.internal", c.API.BaseURL)
	assert.Equal(t, 3*time.Second, c.API.HTTPTimeout)
	assert.Equal(t, "s3cr3t", c.API.SessionCookie)
	assert.Equal(t, 250*time.Millisecond, c.Dashboard.SearchDebounce)
	assert.Equal(t, "9100", c.HTTP.Port)
	assert.Equal(t, []string{"https://help.example.com"}, c.HTTP.AllowedOrigins)
	assert.Equal(t, 10, c.RateLimit.TicketsPerIP)
	assert.Equal(t, -4, c.Logger.Level)
}

func TestLoadConfig_FlatAlias(t *testing.T) {
	t.Setenv("HELPDESK_API_URL", "http://10.0.0.5:5000")
	c, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:5000", c.API.BaseURL)
}

func TestLoadConfig_BadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[api\nbase_url = "), 0o600))
	_, err := LoadConfig(path)
	assert.Error(t, err)
}
