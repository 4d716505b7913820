package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatard/storefront/config"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := config.LoadConfig("")

	assert.Equal(t, "storefront", cfg.System.Appid)
	assert.Equal(t, "chatard_cart", cfg.Cart.StorageKey)
	assert.Equal(t, "542645776592", cfg.Messaging.Phone)
	assert.Equal(t, 1816, cfg.Web.Port)
	assert.Equal(t, "@every 1h", cfg.Catalog.Refresh)
}

func TestLoadConfigFromFile(t *testing.T) {
	cfile := filepath.Join(t.TempDir(), "storefront.yml")
	content := `
web:
  host: 127.0.0.1
  port: 9090
catalog:
  url: https://example.com/products
  timeout: 3
messaging:
  phone: "5491100000000"
`
	require.NoError(t, os.WriteFile(cfile, []byte(content), 0o644))

	cfg := config.LoadConfig(cfile)
	assert.Equal(t, "127.0.0.1", cfg.Web.Host)
	assert.Equal(t, 9090, cfg.Web.Port)
	assert.Equal(t, "https://example.com/products", cfg.Catalog.URL)
	assert.Equal(t, 3, cfg.Catalog.Timeout)
	assert.Equal(t, "5491100000000", cfg.Messaging.Phone)
	// untouched sections keep defaults
	assert.Equal(t, "chatard_cart", cfg.Cart.StorageKey)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("STOREFRONT_WEB_PORT", "7070")
	t.Setenv("STOREFRONT_CART_STORAGE_KEY", "test_cart")

	cfg := config.LoadConfig("")
	assert.Equal(t, 7070, cfg.Web.Port)
	assert.Equal(t, "test_cart", cfg.Cart.StorageKey)
}

func TestLoadConfigMissingFileFallsBack(t *testing.T) {
	cfg := config.LoadConfig("/no/such/file.yml")
	assert.Equal(t, config.DefaultAppConfig.Web.Port, cfg.Web.Port)
}
