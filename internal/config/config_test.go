package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoad_DefaultsAndLegacyEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("PORT", "9090")
	t.Setenv("OMDB_API_KEY", "k3y")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.Server.Port)
	require.Equal(t, testSecret, cfg.Auth.JWTSecret)
	require.Equal(t, "k3y", cfg.Catalog.APIKey)
	require.Equal(t, DriverPostgres, cfg.Store.Driver)
	require.Equal(t, 15*time.Second, cfg.Catalog.Timeout)
	require.Equal(t, TokenTTL, cfg.Auth.TokenTTL)
	require.Equal(t, ClockSkew, cfg.Auth.ClockSkew)
	require.Equal(t, "filmdeck-api", cfg.Auth.Issuer)
	require.False(t, cfg.IsProduction())
}

func TestLoad_PrefixedEnvWins(t *testing.T) {
	t.Setenv("FILMDECK_AUTH_JWT_SECRET", testSecret)
	t.Setenv("FILMDECK_STORE_DRIVER", "MONGO")
	t.Setenv("FILMDECK_CATALOG_TIMEOUT", "20s")
	t.Setenv("FILMDECK_RATELIMIT_REQUESTS", "5")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, DriverMongo, cfg.Store.Driver)
	require.Equal(t, 20*time.Second, cfg.Catalog.Timeout)
	require.Equal(t, 5, cfg.RateLimit.Requests)
}

func TestLoad_RejectsShortSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "short")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "jwt_secret")
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	cfg := &Config{
		Store:   StoreConfig{Driver: "sqlite"},
		Catalog: CatalogConfig{Timeout: 2 * time.Minute},
	}

	err := cfg.Validate()
	require.Error(t, err)

	msg := err.Error()
	for _, want := range []string{"jwt_secret", "issuer", "audience", "sqlite", "catalog.timeout", "base_url"} {
		require.True(t, strings.Contains(msg, want), "missing %q in %q", want, msg)
	}
}
