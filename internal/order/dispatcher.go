package order

import (
	"fmt"
	"net/url"
	"sync"
	"time"

	"github.com/guonaihong/gout"
	"go.uber.org/zap"
)

const (
	// formCleanupDelay mirrors the lifetime of the transient form used
	// for external submissions: the pending record is dropped after this
	// delay whether or not the endpoint answered.
	formCleanupDelay = time.Second

	formSubmitTimeout = 10 * time.Second
)

// Opener hands a URL to a new browsing context. The hosting environment
// supplies the real implementation; the default only logs.
type Opener interface {
	Open(url string) error
}

// LogOpener logs the link instead of opening it.
type LogOpener struct{}

func (LogOpener) Open(link string) error {
	zap.L().Info("order: open link", zap.String("url", link))
	return nil
}

// Dispatcher sends formatted orders out of the system.
type Dispatcher struct {
	phone     string
	formatter *Formatter
	opener    Opener

	// CleanupDelay overrides the pending-form lifetime when positive.
	CleanupDelay time.Duration

	mu      sync.Mutex
	pending map[int64]struct{}
	nextID  int64
}

func NewDispatcher(phone string, formatter *Formatter, opener Opener) *Dispatcher {
	if opener == nil {
		opener = LogOpener{}
	}
	return &Dispatcher{
		phone:     phone,
		formatter: formatter,
		opener:    opener,
		pending:   make(map[int64]struct{}),
	}
}

// DispatchViaLink formats the order and opens the WhatsApp deep link in
// a new browsing context. There is no delivery confirmation; the only
// false return is a request that cannot be formatted at all.
func (d *Dispatcher) DispatchViaLink(req Request) bool {
	message, err := d.formatter.FormatMessage(req)
	if err != nil {
		zap.L().Warn("order: cannot format request", zap.Error(err))
		return false
	}
	link := fmt.Sprintf("https://wa.me/%s?text=%s", d.phone, url.QueryEscape(message))
	if err := d.opener.Open(link); err != nil {
		// fire-and-forget: an opener failure is logged, never surfaced
		zap.L().Warn("order: opening messaging link failed", zap.Error(err))
	}
	zap.L().Info("order: dispatched via messaging link", zap.String("order_id", req.OrderID))
	return true
}

// SubmitForm posts the named fields to the endpoint as a www form in the
// background. The response is never inspected and the pending record is
// removed after a fixed short delay regardless of the outcome.
func (d *Dispatcher) SubmitForm(fields map[string]string, endpoint string) {
	form := gout.H{}
	for name, value := range fields {
		form[name] = value
	}

	d.mu.Lock()
	d.nextID++
	id := d.nextID
	d.pending[id] = struct{}{}
	d.mu.Unlock()

	go func() {
		if err := gout.POST(endpoint).SetTimeout(formSubmitTimeout).SetWWWForm(form).Do(); err != nil {
			zap.L().Debug("order: form submit failed (ignored)", zap.String("endpoint", endpoint), zap.Error(err))
		}
	}()

	delay := d.CleanupDelay
	if delay <= 0 {
		delay = formCleanupDelay
	}
	time.AfterFunc(delay, func() {
		d.mu.Lock()
		delete(d.pending, id)
		d.mu.Unlock()
	})
}

// PendingForms reports submissions whose transient form has not been
// cleaned up yet.
func (d *Dispatcher) PendingForms() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}
