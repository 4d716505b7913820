// Package notify carries the user facing side effects of the storefront
// core: transient toasts, cart counter updates pushed to registered
// renderers, and the change signal that keeps sibling views of the same
// persisted cart in sync.
package notify

import (
	"sort"
	"sync"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
)

type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

const (
	// DefaultDismissAfter is how long a toast stays fully visible.
	DefaultDismissAfter = 3 * time.Second
	// DefaultFadeAfter is the fade-out window before the toast is dropped.
	DefaultFadeAfter = 300 * time.Millisecond
)

// Toast is a transient notification. Fading toasts are still listed so a
// UI can animate their removal.
type Toast struct {
	ID        int64     `json:"id"`
	Message   string    `json:"message"`
	Kind      Kind      `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
	Fading    bool      `json:"fading"`
}

// Renderer receives cart counter updates. The hosting UI decides how to
// display them (the badge is blanked at zero).
type Renderer interface {
	SetCartCount(count int)
}

// LogRenderer is the default renderer; it only logs the count.
type LogRenderer struct{}

func (LogRenderer) SetCartCount(count int) {
	zap.L().Debug("notify: cart count updated", zap.Int("count", count))
}

// ChangeSignal is the cross-view change broadcast. Value carries the full
// serialized cart; Origin identifies the emitting store so it can skip
// its own signals.
type ChangeSignal struct {
	Key    string
	Value  string
	Origin int64
}

// TopicFor returns the bus topic scoped to a persistence key.
func TopicFor(key string) string {
	return "storage.change." + key
}

type Notifier struct {
	bus          EventBus.Bus
	dismissAfter time.Duration
	fadeAfter    time.Duration

	mu        sync.Mutex
	renderers []Renderer
	toasts    map[int64]*Toast
	node      *snowflake.Node
}

func New(bus EventBus.Bus) *Notifier {
	return NewWithTimings(bus, DefaultDismissAfter, DefaultFadeAfter)
}

// NewWithTimings builds a Notifier with explicit toast timings, mainly
// for tests.
func NewWithTimings(bus EventBus.Bus, dismissAfter, fadeAfter time.Duration) *Notifier {
	node, err := snowflake.NewNode(1)
	if err != nil {
		zap.S().Errorf("notify: snowflake node init failed: %s", err)
	}
	return &Notifier{
		bus:          bus,
		dismissAfter: dismissAfter,
		fadeAfter:    fadeAfter,
		toasts:       make(map[int64]*Toast),
		node:         node,
	}
}

func (n *Notifier) AddRenderer(r Renderer) {
	n.mu.Lock()
	n.renderers = append(n.renderers, r)
	n.mu.Unlock()
}

// Render pushes the current item count to every registered renderer.
func (n *Notifier) Render(count int) {
	n.mu.Lock()
	renderers := append([]Renderer(nil), n.renderers...)
	n.mu.Unlock()
	for _, r := range renderers {
		r.SetCartCount(count)
	}
}

// Notify registers a transient toast. It auto-dismisses after the
// configured delay with a short fade window; cleanup timers are
// best-effort and are not cancelled on teardown.
func (n *Notifier) Notify(message string, kind Kind) {
	toast := &Toast{
		Message:   message,
		Kind:      kind,
		CreatedAt: time.Now(),
	}
	if n.node != nil {
		toast.ID = n.node.Generate().Int64()
	}
	n.mu.Lock()
	n.toasts[toast.ID] = toast
	n.mu.Unlock()

	if kind == KindError {
		zap.L().Warn("notify: toast", zap.String("message", message))
	} else {
		zap.L().Info("notify: toast", zap.String("message", message))
	}

	time.AfterFunc(n.dismissAfter, func() {
		n.mu.Lock()
		if t, ok := n.toasts[toast.ID]; ok {
			t.Fading = true
		}
		n.mu.Unlock()
		time.AfterFunc(n.fadeAfter, func() {
			n.mu.Lock()
			delete(n.toasts, toast.ID)
			n.mu.Unlock()
		})
	})
}

// ActiveToasts returns live toasts in creation order.
func (n *Notifier) ActiveToasts() []Toast {
	n.mu.Lock()
	out := make([]Toast, 0, len(n.toasts))
	for _, t := range n.toasts {
		out = append(out, *t)
	}
	n.mu.Unlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}

// Broadcast emits the change signal for a persistence key so sibling
// stores watching the same slot converge on the new value.
func (n *Notifier) Broadcast(key, value string, origin int64) {
	n.bus.Publish(TopicFor(key), ChangeSignal{Key: key, Value: value, Origin: origin})
	zap.L().Debug("notify: change broadcast", zap.String("key", key), zap.Int64("origin", origin))
}
