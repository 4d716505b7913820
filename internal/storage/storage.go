// Package storage provides the single-slot persistence used for the cart.
// A slot is one string key holding one serialized value; the cart is read
// at boot and rewritten whole on every mutation.
package storage

// Store is a key/value slot store. Get returns (nil, nil) for a key that
// was never written.
type Store interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Close() error
}
