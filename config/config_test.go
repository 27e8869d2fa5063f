package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("HXSHOP_STORE_DOMAIN", "omega.myshopify.com")
	t.Setenv("HXSHOP_STOREFRONT_TOKEN", "token")
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	setRequired(t)

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, ModeStream, cfg.RenderMode)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "omega.myshopify.com", cfg.Storefront.Domain)
	assert.Equal(t, "2024-10", cfg.Storefront.APIVersion)
	assert.InDelta(t, 20.0, cfg.Storefront.RateLimit, 0.001)
	assert.Equal(t, "show-on-home-page", cfg.Home.Collection)
	assert.Equal(t, 50, cfg.Home.ProductsLimit)
	assert.Equal(t, "US", cfg.Home.DefaultCountry)
}

func TestLoadMissingRequired(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HXSHOP_STORE_DOMAIN", "")
	t.Setenv("HXSHOP_STOREFRONT_TOKEN", "")
	os.Unsetenv("HXSHOP_STORE_DOMAIN")
	os.Unsetenv("HXSHOP_STOREFRONT_TOKEN")

	_, err := Load(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HXSHOP_STORE_DOMAIN")
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	setRequired(t)
	t.Setenv("HXSHOP_RENDER_MODE", "fragment")
	t.Setenv("HXSHOP_LOG_LEVEL", "debug")
	t.Setenv("HXSHOP_HOME_PRODUCTS_LIMIT", "12")

	cfg, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, ModeFragment, cfg.RenderMode)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 12, cfg.Home.ProductsLimit)
}

func TestLoadFlagsOverrideEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	setRequired(t)
	t.Setenv("HXSHOP_ADDR", ":9000")

	cfg, err := Load([]string{"--addr", ":7000", "--render-mode=fragment", "--log-level", "warn", "--static", "/srv/static"})
	require.NoError(t, err)

	assert.Equal(t, ":7000", cfg.Addr)
	assert.Equal(t, ModeFragment, cfg.RenderMode)
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel)
	assert.Equal(t, "/srv/static", cfg.StaticDir)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"),
		[]byte("HXSHOP_STORE_DOMAIN=dotenv.myshopify.com\nHXSHOP_STOREFRONT_TOKEN=dotenv\n"), 0o600))

	// Registered so the values godotenv sets are restored afterwards.
	t.Setenv("HXSHOP_STORE_DOMAIN", "")
	t.Setenv("HXSHOP_STOREFRONT_TOKEN", "")
	os.Unsetenv("HXSHOP_STORE_DOMAIN")
	os.Unsetenv("HXSHOP_STOREFRONT_TOKEN")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "dotenv.myshopify.com", cfg.Storefront.Domain)
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		args []string
	}{
		{"render mode", map[string]string{"HXSHOP_RENDER_MODE": "batch"}, nil},
		{"log format", map[string]string{"HXSHOP_LOG_FORMAT": "xml"}, nil},
		{"products limit", map[string]string{"HXSHOP_HOME_PRODUCTS_LIMIT": "0"}, nil},
		{"products limit too high", map[string]string{"HXSHOP_HOME_PRODUCTS_LIMIT": "500"}, nil},
		{"log level flag", nil, []string{"--log-level", "loud"}},
		{"unknown flag", nil, []string{"--nope"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			setRequired(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(tt.args)
			assert.Error(t, err)
		})
	}
}

func TestLogger(t *testing.T) {
	cfg := Config{LogFormat: "text", LogLevel: slog.LevelWarn}
	log := cfg.Logger()
	require.NotNil(t, log)
	assert.False(t, log.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, log.Enabled(t.Context(), slog.LevelError))
}
