package storage

import (
	"github.com/pkg/errors"
	"go.etcd.io/bbolt"
)

var slotBucket = []byte("storefront")

// BoltStore persists slots in a single-bucket bbolt file.
type BoltStore struct {
	db *bbolt.DB
}

func NewBoltStore(path string) (*BoltStore, error) {
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, errors.Wrap(err, "storage: open bolt file")
	}
	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(slotBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "storage: create bucket")
	}
	return &BoltStore{db: db}, nil
}

func (s *BoltStore) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		v := tx.Bucket(slotBucket).Get([]byte(key))
		if v != nil {
			value = append([]byte(nil), v...)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "storage: get %s", key)
	}
	return value, nil
}

func (s *BoltStore) Put(key string, value []byte) error {
	err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(slotBucket).Put([]byte(key), value)
	})
	return errors.Wrapf(err, "storage: put %s", key)
}

func (s *BoltStore) Close() error {
	return s.db.Close()
}
