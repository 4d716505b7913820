package order_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chatard/storefront/internal/domain"
	"github.com/chatard/storefront/internal/order"
)

type captureOpener struct {
	links []string
}

func (o *captureOpener) Open(link string) error {
	o.links = append(o.links, link)
	return nil
}

func TestDispatchViaLink(t *testing.T) {
	opener := &captureOpener{}
	d := order.NewDispatcher("542645776592", fixedFormatter(), opener)

	req := order.Request{
		Kind:    order.KindProduct,
		OrderID: "ORD-3003",
		Product: &order.ProductRequest{
			Customer: order.Customer{Name: "Juan", Phone: "264", Address: "San Juan"},
			Items: []domain.CartItem{
				{ProductID: "pieza-001", Name: "Placa", Quantity: 2, Price: 100.0},
			},
			Total: 200.0,
		},
	}

	assert.True(t, d.DispatchViaLink(req))
	require.Len(t, opener.links, 1)

	link := opener.links[0]
	assert.True(t, strings.HasPrefix(link, "https://wa.me/542645776592?text="))

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	text := parsed.Query().Get("text")
	expected, err := fixedFormatter().FormatMessage(req)
	require.NoError(t, err)
	assert.Equal(t, expected, text)
}

func TestDispatchViaLinkMalformedRequest(t *testing.T) {
	opener := &captureOpener{}
	d := order.NewDispatcher("542645776592", fixedFormatter(), opener)

	assert.False(t, d.DispatchViaLink(order.Request{Kind: "mystery"}))
	assert.Empty(t, opener.links)
}

func TestSubmitForm(t *testing.T) {
	received := make(chan url.Values, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		received <- r.PostForm
	}))
	defer server.Close()

	d := order.NewDispatcher("542645776592", fixedFormatter(), &captureOpener{})
	d.CleanupDelay = 50 * time.Millisecond

	d.SubmitForm(map[string]string{
		"entry.name":  "Juan",
		"entry.phone": "264",
	}, server.URL)
	assert.Equal(t, 1, d.PendingForms())

	select {
	case form := <-received:
		assert.Equal(t, "Juan", form.Get("entry.name"))
		assert.Equal(t, "264", form.Get("entry.phone"))
	case <-time.After(2 * time.Second):
		t.Fatal("form submission never reached the endpoint")
	}

	// the transient form is cleaned up after the fixed delay regardless
	// of the endpoint's answer
	assert.Eventually(t, func() bool { return d.PendingForms() == 0 },
		time.Second, 10*time.Millisecond)
}

func TestSubmitFormUnreachableEndpointIsSilent(t *testing.T) {
	d := order.NewDispatcher("542645776592", fixedFormatter(), &captureOpener{})
	d.CleanupDelay = 20 * time.Millisecond

	assert.NotPanics(t, func() {
		d.SubmitForm(map[string]string{"a": "b"}, "http://127.0.0.1:1/unreachable")
	})
	assert.Eventually(t, func() bool { return d.PendingForms() == 0 },
		time.Second, 10*time.Millisecond)
}

func TestNewOrderID(t *testing.T) {
	a := order.NewOrderID()
	b := order.NewOrderID()
	assert.True(t, strings.HasPrefix(a, "ORD-"))
	assert.NotEqual(t, a, b)
}
