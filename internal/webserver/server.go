// Package webserver adapts the storefront core for a browser UI. It is a
// thin translation layer: cart semantics, stock checks and notifications
// all live in the core packages.
package webserver

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/chatard/storefront/internal/app"
)

type Server struct {
	app  app.AppContext
	echo *echo.Echo
}

func New(a app.AppContext) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	s := &Server{app: a, echo: e}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.echo.Group("/api")
	api.GET("/products", s.listProducts)
	api.POST("/products/refresh", s.refreshProducts)
	api.GET("/cart", s.getCart)
	api.POST("/cart/items", s.addCartItem)
	api.PUT("/cart/items/:id", s.updateCartItem)
	api.DELETE("/cart/items/:id", s.deleteCartItem)
	api.GET("/notifications", s.listNotifications)
	api.POST("/checkout/whatsapp", s.checkoutWhatsApp)
	api.POST("/checkout/form", s.checkoutForm)
}

// Echo exposes the underlying router, used by tests.
func (s *Server) Echo() *echo.Echo {
	return s.echo
}

func (s *Server) Start() error {
	cfg := s.app.Config().Web
	return s.echo.Start(fmt.Sprintf("%s:%d", cfg.Host, cfg.Port))
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func ok(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"code": "OK",
		"data": data,
	})
}

func fail(c echo.Context, status int, code, message string, detail interface{}) error {
	return c.JSON(status, map[string]interface{}{
		"code":    code,
		"message": message,
		"detail":  detail,
	})
}
