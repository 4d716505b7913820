package notify_test

import (
	"sync"
	"testing"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatard/storefront/internal/notify"
)

type countRenderer struct {
	mu     sync.Mutex
	counts []int
}

func (r *countRenderer) SetCartCount(count int) {
	r.mu.Lock()
	r.counts = append(r.counts, count)
	r.mu.Unlock()
}

func (r *countRenderer) last() (int, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.counts) == 0 {
		return 0, false
	}
	return r.counts[len(r.counts)-1], true
}

func TestRenderPushesCountToAllRenderers(t *testing.T) {
	n := notify.New(EventBus.New())
	first := &countRenderer{}
	second := &countRenderer{}
	n.AddRenderer(first)
	n.AddRenderer(second)

	n.Render(4)
	n.Render(0)

	for _, r := range []*countRenderer{first, second} {
		last, ok := r.last()
		require.True(t, ok)
		assert.Equal(t, 0, last)
		assert.Equal(t, []int{4, 0}, r.counts)
	}
}

func TestToastLifecycle(t *testing.T) {
	n := notify.NewWithTimings(EventBus.New(), 40*time.Millisecond, 20*time.Millisecond)

	n.Notify("Producto agregado", notify.KindSuccess)
	toasts := n.ActiveToasts()
	require.Len(t, toasts, 1)
	assert.Equal(t, "Producto agregado", toasts[0].Message)
	assert.Equal(t, notify.KindSuccess, toasts[0].Kind)
	assert.False(t, toasts[0].Fading)

	// dismissed toasts fade first, then disappear
	assert.Eventually(t, func() bool {
		active := n.ActiveToasts()
		return len(active) == 1 && active[0].Fading
	}, time.Second, 5*time.Millisecond)

	assert.Eventually(t, func() bool {
		return len(n.ActiveToasts()) == 0
	}, time.Second, 5*time.Millisecond)
}

func TestActiveToastsOrdered(t *testing.T) {
	n := notify.New(EventBus.New())
	n.Notify("primero", notify.KindSuccess)
	n.Notify("segundo", notify.KindError)
	n.Notify("tercero", notify.KindSuccess)

	toasts := n.ActiveToasts()
	require.Len(t, toasts, 3)
	assert.Equal(t, "primero", toasts[0].Message)
	assert.Equal(t, "segundo", toasts[1].Message)
	assert.Equal(t, "tercero", toasts[2].Message)
}

func TestBroadcastDeliversChangeSignal(t *testing.T) {
	bus := EventBus.New()
	n := notify.New(bus)

	var got notify.ChangeSignal
	require.NoError(t, bus.Subscribe(notify.TopicFor("chatard_cart"), func(sig notify.ChangeSignal) {
		got = sig
	}))

	n.Broadcast("chatard_cart", `[{"productId":"pieza-001","quantity":2}]`, 77)

	assert.Equal(t, "chatard_cart", got.Key)
	assert.Equal(t, `[{"productId":"pieza-001","quantity":2}]`, got.Value)
	assert.Equal(t, int64(77), got.Origin)
}

func TestBroadcastIsKeyScoped(t *testing.T) {
	bus := EventBus.New()
	n := notify.New(bus)

	delivered := false
	require.NoError(t, bus.Subscribe(notify.TopicFor("other_key"), func(sig notify.ChangeSignal) {
		delivered = true
	}))

	n.Broadcast("chatard_cart", "[]", 1)
	assert.False(t, delivered)
}
