package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.ServerAddr)
	require.Equal(t, "release", cfg.GinMode)
	require.Equal(t, []string{"*"}, cfg.AllowOrigins)
	require.Equal(t, 50, cfg.MinContentLength)
	require.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SERVER_ADDR", ":9090")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("MIN_CONTENT_LENGTH", "80")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.ServerAddr)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowOrigins)
	require.Equal(t, 80, cfg.MinContentLength)
}
