// Package cart implements the persisted shopping cart. Every mutation is
// stock-checked against the current catalog, written through to the
// persistence slot, rendered, and broadcast so sibling views of the same
// slot converge (last write wins).
package cart

import (
	"fmt"
	"sync"

	"github.com/asaskevich/EventBus"
	"github.com/bwmarrin/snowflake"
	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/chatard/storefront/internal/catalog"
	"github.com/chatard/storefront/internal/domain"
	"github.com/chatard/storefront/internal/notify"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	originNode *snowflake.Node
	originOnce sync.Once
)

func nextOrigin() int64 {
	originOnce.Do(func() {
		node, err := snowflake.NewNode(1)
		if err != nil {
			zap.S().Errorf("cart: snowflake node init failed: %s", err)
			return
		}
		originNode = node
	})
	if originNode == nil {
		return 0
	}
	return originNode.Generate().Int64()
}

// Store is one view of the persisted cart.
type Store struct {
	key      string
	storage  StorageSlot
	catalog  *catalog.Catalog
	notifier *notify.Notifier
	bus      EventBus.Bus
	origin   int64

	mu    sync.Mutex
	items []domain.CartItem

	handler func(notify.ChangeSignal)
}

// StorageSlot is the subset of the storage layer the cart needs.
type StorageSlot interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
}

// NewStore loads the persisted cart (empty when the slot is absent or
// corrupt) and subscribes to the change signal for its key.
func NewStore(key string, slot StorageSlot, cat *catalog.Catalog, notifier *notify.Notifier, bus EventBus.Bus) (*Store, error) {
	s := &Store{
		key:      key,
		storage:  slot,
		catalog:  cat,
		notifier: notifier,
		bus:      bus,
		origin:   nextOrigin(),
	}

	data, err := slot.Get(key)
	if err != nil {
		zap.L().Warn("cart: reading persisted cart failed, starting empty", zap.Error(err))
	} else if len(data) > 0 {
		if err := json.Unmarshal(data, &s.items); err != nil {
			zap.L().Warn("cart: persisted cart is corrupt, starting empty", zap.Error(err))
			s.items = nil
		}
	}

	s.handler = s.onChange
	if err := bus.Subscribe(notify.TopicFor(key), s.handler); err != nil {
		return nil, errors.Wrap(err, "cart: subscribe change signal")
	}
	return s, nil
}

// onChange replaces the in-memory cart with the broadcast value. This is
// the authoritative convergence path between views sharing one slot.
func (s *Store) onChange(sig notify.ChangeSignal) {
	if sig.Key != s.key || sig.Origin == s.origin {
		return
	}
	var items []domain.CartItem
	if err := json.Unmarshal([]byte(sig.Value), &items); err != nil {
		zap.L().Warn("cart: change signal payload unparsable, resetting to empty", zap.Error(err))
		items = nil
	}
	s.mu.Lock()
	s.items = items
	count := s.itemCountLocked()
	s.mu.Unlock()
	s.notifier.Render(count)
}

// AddToCart adds quantity units of a product, merging into an existing
// line. It returns false and emits an error toast when the product is
// unknown or the requested quantity cannot be covered by current stock.
func (s *Store) AddToCart(productID string, quantity int) bool {
	if quantity <= 0 {
		quantity = 1
	}
	product, ok := s.catalog.Find(productID)
	if !ok {
		s.notifier.Notify("Producto no encontrado", notify.KindError)
		return false
	}

	s.mu.Lock()
	if quantity > product.Stock {
		s.mu.Unlock()
		s.notifier.Notify(fmt.Sprintf("Stock insuficiente. Solo quedan %d unidades", product.Stock), notify.KindError)
		return false
	}
	if existing := s.findLocked(productID); existing != nil {
		if existing.Quantity+quantity > product.Stock {
			s.mu.Unlock()
			s.notifier.Notify(fmt.Sprintf("No puedes agregar más. Stock máximo: %d", product.Stock), notify.KindError)
			return false
		}
		existing.Quantity += quantity
	} else {
		s.items = append(s.items, domain.CartItem{
			ProductID: productID,
			Quantity:  quantity,
			Price:     product.Price,
			Name:      product.Name,
			Image:     product.Image,
		})
	}
	payload := s.persistLocked()
	count := s.itemCountLocked()
	s.mu.Unlock()

	s.notifier.Render(count)
	s.notifier.Broadcast(s.key, payload, s.origin)
	s.notifier.Notify(product.Name+" agregado al carrito", notify.KindSuccess)
	return true
}

// RemoveFromCart drops the line for a product. Removing an absent line
// is a no-op, not an error.
func (s *Store) RemoveFromCart(productID string) {
	s.mu.Lock()
	kept := s.items[:0]
	for _, item := range s.items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	s.items = kept
	payload := s.persistLocked()
	count := s.itemCountLocked()
	s.mu.Unlock()

	s.notifier.Render(count)
	s.notifier.Broadcast(s.key, payload, s.origin)
	s.notifier.Notify("Producto eliminado del carrito", notify.KindSuccess)
}

// UpdateQuantity sets the quantity of an existing line. Zero or less
// removes the line; a quantity above current stock is rejected with an
// error toast and the line keeps its previous quantity.
func (s *Store) UpdateQuantity(productID string, quantity int) {
	product, ok := s.catalog.Find(productID)

	s.mu.Lock()
	item := s.findLocked(productID)
	if item == nil || !ok {
		s.mu.Unlock()
		return
	}
	if quantity <= 0 {
		s.mu.Unlock()
		s.RemoveFromCart(productID)
		return
	}
	if quantity > product.Stock {
		s.mu.Unlock()
		s.notifier.Notify(fmt.Sprintf("No puedes agregar más. Stock máximo: %d", product.Stock), notify.KindError)
		return
	}
	item.Quantity = quantity
	payload := s.persistLocked()
	count := s.itemCountLocked()
	s.mu.Unlock()

	s.notifier.Render(count)
	s.notifier.Broadcast(s.key, payload, s.origin)
}

// Total sums snapshot price times quantity over all lines. Later catalog
// price changes do not affect it.
func (s *Store) Total() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0.0
	for _, item := range s.items {
		total += item.Subtotal()
	}
	return total
}

// ItemCount sums quantities over all lines.
func (s *Store) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.itemCountLocked()
}

// Items returns a copy of the lines in insertion order.
func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.CartItem(nil), s.items...)
}

// Close unsubscribes from the change signal.
func (s *Store) Close() error {
	return s.bus.Unsubscribe(notify.TopicFor(s.key), s.handler)
}

func (s *Store) findLocked(productID string) *domain.CartItem {
	for i := range s.items {
		if s.items[i].ProductID == productID {
			return &s.items[i]
		}
	}
	return nil
}

func (s *Store) itemCountLocked() int {
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// persistLocked writes the whole serialized cart through to the slot and
// returns the payload for broadcasting. A write failure is logged and
// the in-memory state stands; the next mutation retries.
func (s *Store) persistLocked() string {
	data, err := json.Marshal(s.items)
	if err != nil {
		zap.L().Error("cart: serialize failed", zap.Error(err))
		return "[]"
	}
	if err := s.storage.Put(s.key, data); err != nil {
		zap.L().Error("cart: persist failed", zap.Error(err))
	}
	return string(data)
}
