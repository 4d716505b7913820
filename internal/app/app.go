package app

import (
	"context"
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata"

	"github.com/asaskevich/EventBus"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/chatard/storefront/config"
	"github.com/chatard/storefront/internal/cart"
	"github.com/chatard/storefront/internal/catalog"
	"github.com/chatard/storefront/internal/notify"
	"github.com/chatard/storefront/internal/order"
	"github.com/chatard/storefront/internal/storage"
)

// Application wires the storefront core together: persistence slot,
// change bus, catalog, cart, notifier and order dispatch.
type Application struct {
	appConfig  *config.AppConfig
	bus        EventBus.Bus
	boltStore  *storage.BoltStore
	catalog    *catalog.Catalog
	loader     *catalog.Loader
	cartStore  *cart.Store
	notifier   *notify.Notifier
	formatter  *order.Formatter
	dispatcher *order.Dispatcher
	sched      *cron.Cron
	loc        *time.Location
}

// Ensure Application implements all interfaces
var (
	_ ConfigProvider    = (*Application)(nil)
	_ CatalogProvider   = (*Application)(nil)
	_ CartProvider      = (*Application)(nil)
	_ NotifierProvider  = (*Application)(nil)
	_ DispatchProvider  = (*Application)(nil)
	_ SchedulerProvider = (*Application)(nil)
	_ AppContext        = (*Application)(nil)
)

func NewApplication(appConfig *config.AppConfig) *Application {
	return &Application{appConfig: appConfig}
}

func (a *Application) Config() *config.AppConfig     { return a.appConfig }
func (a *Application) Bus() EventBus.Bus             { return a.bus }
func (a *Application) Catalog() *catalog.Catalog     { return a.catalog }
func (a *Application) Loader() *catalog.Loader       { return a.loader }
func (a *Application) Cart() *cart.Store             { return a.cartStore }
func (a *Application) Notifier() *notify.Notifier    { return a.notifier }
func (a *Application) Dispatcher() *order.Dispatcher { return a.dispatcher }
func (a *Application) Scheduler() *cron.Cron         { return a.sched }

// Init sets up logging, opens the persistence slot and builds every
// component. Boot order follows the control flow: catalog first, then
// the cart from persisted state, then the initial badge render.
func (a *Application) Init() error {
	cfg := a.appConfig

	loc, err := time.LoadLocation(cfg.System.Location)
	if err != nil {
		zap.S().Error("timezone config error")
		loc = time.Local
	} else {
		time.Local = loc
	}
	a.loc = loc

	a.initLogger()

	if err := os.MkdirAll(cfg.System.Workdir, 0o755); err != nil {
		return errors.Wrap(err, "app: create workdir")
	}
	a.boltStore, err = storage.NewBoltStore(filepath.Join(cfg.System.Workdir, "storefront.db"))
	if err != nil {
		return errors.Wrap(err, "app: open storage")
	}
	zap.S().Infof("Storage slot opened under %s", cfg.System.Workdir)

	a.bus = EventBus.New()
	a.notifier = notify.New(a.bus)
	a.notifier.AddRenderer(notify.LogRenderer{})

	a.catalog = catalog.NewCatalog(nil)
	a.loader = catalog.NewLoader(
		cfg.Catalog.URL,
		time.Duration(cfg.Catalog.Timeout)*time.Second,
		a.catalog,
		a.notifier,
	)
	a.catalog.Replace(a.loader.Load(context.Background()))

	a.cartStore, err = cart.NewStore(cfg.Cart.StorageKey, a.boltStore, a.catalog, a.notifier, a.bus)
	if err != nil {
		return errors.Wrap(err, "app: init cart store")
	}
	a.notifier.Render(a.cartStore.ItemCount())

	a.formatter = order.NewFormatter(cfg.Messaging.Origin, loc)
	a.dispatcher = order.NewDispatcher(cfg.Messaging.Phone, a.formatter, order.LogOpener{})

	a.initJob()
	return nil
}

func (a *Application) initLogger() {
	cfg := a.appConfig

	var zapConfig zap.Config
	if cfg.Logger.Mode == "production" {
		zapConfig = zap.NewProductionConfig()
	} else {
		zapConfig = zap.NewDevelopmentConfig()
	}
	zapConfig.OutputPaths = []string{"stdout"}

	var logger *zap.Logger
	if cfg.Logger.FileEnable {
		lumberJackLogger := &lumberjack.Logger{
			Filename:   cfg.Logger.Filename,
			MaxSize:    64,
			MaxBackups: 7,
			MaxAge:     7,
			Compress:   false,
		}
		core := zapcore.NewTee(
			zapcore.NewCore(
				zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
				zapcore.AddSync(lumberJackLogger),
				zapConfig.Level,
			),
			zapcore.NewCore(
				zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
				zapcore.AddSync(os.Stdout),
				zapConfig.Level,
			),
		)
		logger = zap.New(core, zap.AddCaller())
	} else {
		var err error
		logger, err = zapConfig.Build(zap.AddCaller())
		if err != nil {
			panic(err)
		}
	}
	zap.ReplaceGlobals(logger)
}

func (a *Application) initJob() {
	a.sched = cron.New(cron.WithLocation(a.loc))
	_, err := a.sched.AddFunc(a.appConfig.Catalog.Refresh, func() {
		a.loader.Refresh(context.Background())
	})
	if err != nil {
		zap.S().Errorf("init job error %s", err.Error())
	}
	a.sched.Start()
}

// Release releases application resources.
func (a *Application) Release() {
	if a.sched != nil {
		a.sched.Stop()
	}
	if a.cartStore != nil {
		_ = a.cartStore.Close()
	}
	if a.boltStore != nil {
		_ = a.boltStore.Close()
	}
	_ = zap.L().Sync()
}
