package app

import (
	"github.com/asaskevich/EventBus"
	"github.com/robfig/cron/v3"

	"github.com/chatard/storefront/config"
	"github.com/chatard/storefront/internal/cart"
	"github.com/chatard/storefront/internal/catalog"
	"github.com/chatard/storefront/internal/notify"
	"github.com/chatard/storefront/internal/order"
)

// ConfigProvider provides application configuration
type ConfigProvider interface {
	Config() *config.AppConfig
}

// BusProvider provides the change-signal bus
type BusProvider interface {
	Bus() EventBus.Bus
}

// CatalogProvider provides the product catalog and its loader
type CatalogProvider interface {
	Catalog() *catalog.Catalog
	Loader() *catalog.Loader
}

// CartProvider provides the cart store
type CartProvider interface {
	Cart() *cart.Store
}

// NotifierProvider provides the UI notifier
type NotifierProvider interface {
	Notifier() *notify.Notifier
}

// DispatchProvider provides outbound order dispatch
type DispatchProvider interface {
	Dispatcher() *order.Dispatcher
}

// SchedulerProvider provides task scheduling capability
type SchedulerProvider interface {
	Scheduler() *cron.Cron
}

// AppContext combines all provider interfaces for full application context.
// Services should depend on specific providers or this combined interface.
type AppContext interface {
	ConfigProvider
	BusProvider
	CatalogProvider
	CartProvider
	NotifierProvider
	DispatchProvider
	SchedulerProvider

	Release()
}
