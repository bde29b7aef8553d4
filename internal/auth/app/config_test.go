package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	require.Equal(t, "codezen-auth", cfg.Issuer)
	require.Equal(t, "auth.db", cfg.DatabaseFile)
	require.Equal(t, "pepper", cfg.PepperFile)
	require.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("AUTH_ISSUER", "test-issuer")
	t.Setenv("CLIENT_URL", "https://codezen.example, https://staging.codezen.example/")
	t.Setenv("PORT", "9090")
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "30s")

	cfg := LoadConfig()

	require.Equal(t, "test-issuer", cfg.Issuer)
	require.Equal(t,
		[]string{"https://codezen.example", "https://staging.codezen.example"},
		cfg.AllowedOrigins,
	)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, 30*time.Second, cfg.ShutdownGracePeriod)
}

func TestShutdownGracePeriodBareSeconds(t *testing.T) {
	t.Setenv("SHUTDOWN_GRACE_PERIOD", "45")

	cfg := LoadConfig()
	require.Equal(t, 45*time.Second, cfg.ShutdownGracePeriod)
}
