// Package order turns a finalized order into its outbound side effects:
// a templated WhatsApp message opened through a deep link, or a form POST
// to an external endpoint. Both paths are fire-and-forget by contract;
// no delivery confirmation exists and none is reported.
package order

import (
	"sync"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"

	"github.com/chatard/storefront/internal/domain"
)

type Kind string

const (
	KindService Kind = "service"
	KindProduct Kind = "product"
)

type Customer struct {
	Name    string `json:"name" mapstructure:"name"`
	Phone   string `json:"phone" mapstructure:"phone"`
	Email   string `json:"email" mapstructure:"email"`
	Address string `json:"address" mapstructure:"address"`
}

// ServiceRequest is a quote request for one of the fixed service codes.
// Material, Quantity and Deadline are free text and optional.
type ServiceRequest struct {
	Customer    Customer `json:"customer" mapstructure:"customer"`
	Service     string   `json:"service" mapstructure:"service"`
	Description string   `json:"description" mapstructure:"description"`
	Material    string   `json:"material" mapstructure:"material"`
	Quantity    string   `json:"quantity" mapstructure:"quantity"`
	Deadline    string   `json:"deadline" mapstructure:"deadline"`
}

// ProductRequest is a purchase of the current cart snapshot.
type ProductRequest struct {
	Customer Customer          `json:"customer" mapstructure:"customer"`
	Items    []domain.CartItem `json:"items" mapstructure:"items"`
	Total    float64           `json:"total" mapstructure:"total"`
}

// Request is the tagged order variant. Exactly one of Service or Product
// is set, matching Kind. Requests are transient: built at checkout,
// formatted once, discarded.
type Request struct {
	Kind    Kind   `json:"type" mapstructure:"type"`
	OrderID string `json:"orderId" mapstructure:"orderId"`
	Service *ServiceRequest
	Product *ProductRequest
}

var (
	idNode *snowflake.Node
	idOnce sync.Once
)

// NewOrderID generates an order identifier for requests that arrive
// without one.
func NewOrderID() string {
	idOnce.Do(func() {
		node, err := snowflake.NewNode(2)
		if err != nil {
			zap.S().Errorf("order: snowflake node init failed: %s", err)
			return
		}
		idNode = node
	})
	if idNode == nil {
		return "ORD-0"
	}
	return "ORD-" + idNode.Generate().String()
}
