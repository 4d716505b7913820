package catalog

import (
	"context"
	"time"

	"github.com/guonaihong/gout"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/chatard/storefront/internal/domain"
	"github.com/chatard/storefront/internal/notify"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type catalogResponse struct {
	Products []domain.Product `json:"products"`
}

// Loader fetches the catalog from the remote endpoint. Every failure
// mode (network error, non-2xx status, malformed body, missing products
// field) degrades to the default catalog with only a log entry.
type Loader struct {
	url      string
	timeout  time.Duration
	catalog  *Catalog
	notifier *notify.Notifier
}

func NewLoader(url string, timeout time.Duration, cat *Catalog, notifier *notify.Notifier) *Loader {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Loader{url: url, timeout: timeout, catalog: cat, notifier: notifier}
}

// Load fetches the product list. It suspends the caller until the fetch
// completes or fails and never returns an error.
func (l *Loader) Load(ctx context.Context) []domain.Product {
	if l.url == "" {
		zap.L().Info("catalog: no remote url configured, using default products")
		return domain.DefaultProducts()
	}

	var (
		code int
		body []byte
	)
	err := gout.GET(l.url).
		WithContext(ctx).
		SetTimeout(l.timeout).
		Code(&code).
		BindBody(&body).
		Do()
	if err != nil {
		zap.L().Warn("catalog: remote fetch failed, using default products", zap.Error(err))
		return domain.DefaultProducts()
	}
	if code < 200 || code >= 300 {
		zap.L().Warn("catalog: remote returned non-success status, using default products", zap.Int("status", code))
		return domain.DefaultProducts()
	}

	var resp catalogResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		zap.L().Warn("catalog: malformed remote payload, using default products", zap.Error(err))
		return domain.DefaultProducts()
	}
	if len(resp.Products) == 0 {
		zap.L().Warn("catalog: remote payload has no products, using default products")
		return domain.DefaultProducts()
	}

	zap.L().Info("catalog: products loaded", zap.Int("count", len(resp.Products)))
	return resp.Products
}

// Refresh re-runs Load, swaps the catalog and emits a success toast
// whether real or fallback data was used.
func (l *Loader) Refresh(ctx context.Context) []domain.Product {
	products := l.Load(ctx)
	l.catalog.Replace(products)
	if l.notifier != nil {
		l.notifier.Notify("Productos actualizados", notify.KindSuccess)
	}
	return l.catalog.Products()
}
