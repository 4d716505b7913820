package app_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatard/storefront/config"
	"github.com/chatard/storefront/internal/app"
)

func newBootedApp(t *testing.T) *app.Application {
	t.Helper()
	cfg := new(config.AppConfig)
	*cfg = *config.DefaultAppConfig
	cfg.System.Workdir = t.TempDir()
	cfg.Catalog.URL = ""

	application := app.NewApplication(cfg)
	require.NoError(t, application.Init())
	t.Cleanup(application.Release)
	return application
}

func TestBootSequence(t *testing.T) {
	application := newBootedApp(t)

	// catalog first (fallback path), then carts from persisted state
	assert.Len(t, application.Catalog().Products(), 6)
	assert.Equal(t, 0, application.Cart().ItemCount())
	assert.NotNil(t, application.Dispatcher())
	assert.NotNil(t, application.Scheduler())
}

func TestCartSurvivesRestart(t *testing.T) {
	cfg := new(config.AppConfig)
	*cfg = *config.DefaultAppConfig
	cfg.System.Workdir = t.TempDir()
	cfg.Catalog.URL = ""

	first := app.NewApplication(cfg)
	require.NoError(t, first.Init())
	require.True(t, first.Cart().AddToCart("pieza-001", 3))
	first.Release()

	second := app.NewApplication(cfg)
	require.NoError(t, second.Init())
	defer second.Release()

	assert.Equal(t, 3, second.Cart().ItemCount())
	assert.InDelta(t, 3751.50, second.Cart().Total(), 1e-9)
}
