package webserver

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"

	"github.com/chatard/storefront/internal/order"
	"github.com/chatard/storefront/pkg/money"
)

func (s *Server) listProducts(c echo.Context) error {
	if cast.ToBool(c.QueryParam("featured")) {
		return ok(c, s.app.Catalog().Featured())
	}
	return ok(c, s.app.Catalog().Products())
}

func (s *Server) refreshProducts(c echo.Context) error {
	products := s.app.Loader().Refresh(c.Request().Context())
	return ok(c, map[string]interface{}{
		"count":    len(products),
		"products": products,
	})
}

func (s *Server) getCart(c echo.Context) error {
	store := s.app.Cart()
	total := store.Total()
	return ok(c, map[string]interface{}{
		"items":        store.Items(),
		"total":        total,
		"totalDisplay": money.FormatARS(total),
		"count":        store.ItemCount(),
	})
}

func (s *Server) addCartItem(c echo.Context) error {
	var payload struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse cart item", err.Error())
	}
	payload.ProductID = strings.TrimSpace(payload.ProductID)
	if payload.ProductID == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "productId is required", nil)
	}
	if payload.Quantity == 0 {
		payload.Quantity = 1
	}
	if !s.app.Cart().AddToCart(payload.ProductID, payload.Quantity) {
		return fail(c, http.StatusConflict, "CART_REJECTED", "Product unknown or insufficient stock", nil)
	}
	return ok(c, map[string]interface{}{
		"added": true,
		"count": s.app.Cart().ItemCount(),
	})
}

func (s *Server) updateCartItem(c echo.Context) error {
	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse quantity", err.Error())
	}
	s.app.Cart().UpdateQuantity(c.Param("id"), payload.Quantity)
	return ok(c, map[string]interface{}{
		"count": s.app.Cart().ItemCount(),
	})
}

func (s *Server) deleteCartItem(c echo.Context) error {
	s.app.Cart().RemoveFromCart(c.Param("id"))
	return ok(c, map[string]interface{}{
		"count": s.app.Cart().ItemCount(),
	})
}

func (s *Server) listNotifications(c echo.Context) error {
	return ok(c, s.app.Notifier().ActiveToasts())
}

// checkoutWhatsApp accepts a tagged order payload, fills a product order
// from the live cart when items are omitted, and opens the messaging
// deep link. Dispatch is fire-and-forget; "dispatched" only means the
// link was handed off.
func (s *Server) checkoutWhatsApp(c echo.Context) error {
	var raw map[string]interface{}
	if err := c.Bind(&raw); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse order", err.Error())
	}

	req := order.Request{
		Kind:    order.Kind(cast.ToString(raw["type"])),
		OrderID: cast.ToString(raw["orderId"]),
	}
	if req.OrderID == "" {
		req.OrderID = order.NewOrderID()
	}

	switch req.Kind {
	case order.KindService:
		var sr order.ServiceRequest
		if err := mapstructure.Decode(raw, &sr); err != nil {
			return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to decode service order", err.Error())
		}
		req.Service = &sr
	case order.KindProduct:
		var pr order.ProductRequest
		if err := mapstructure.Decode(raw, &pr); err != nil {
			return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to decode product order", err.Error())
		}
		if len(pr.Items) == 0 {
			pr.Items = s.app.Cart().Items()
			pr.Total = s.app.Cart().Total()
		}
		req.Product = &pr
	default:
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "type must be 'service' or 'product'", nil)
	}

	if !s.app.Dispatcher().DispatchViaLink(req) {
		return fail(c, http.StatusUnprocessableEntity, "DISPATCH_FAILED", "Order could not be formatted", nil)
	}
	return ok(c, map[string]interface{}{
		"dispatched": true,
		"orderId":    req.OrderID,
	})
}

func (s *Server) checkoutForm(c echo.Context) error {
	var payload struct {
		Endpoint string            `json:"endpoint"`
		Fields   map[string]string `json:"fields"`
	}
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse form submission", err.Error())
	}
	if payload.Endpoint == "" {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "endpoint is required", nil)
	}
	s.app.Dispatcher().SubmitForm(payload.Fields, payload.Endpoint)
	return ok(c, map[string]interface{}{"submitted": true})
}
