// Package keyringstore adapts the 99designs/keyring system-keychain library
// to the core's store.Store port, so a private key (and its session state)
// can persist across process restarts on a desktop host without touching
// disk in plaintext.
package keyringstore

import (
	"errors"
	"fmt"

	"github.com/99designs/keyring"

	"github.com/teslamotors/ble-vehicle-core/pkg/store"
)

const serviceName = "com.tesla.ble-vehicle-core"

// Store wraps a system keyring under a single service name, namespacing
// every key under keyPrefix so several local identities can share one
// keyring backend.
type Store struct {
	ring      keyring.Keyring
	keyPrefix string
}

// Open opens the OS-native keyring backend, restricting the set of allowed
// backends when allowed is non-empty (e.g. to force the file backend in a
// headless environment).
func Open(keyPrefix string, allowed ...keyring.BackendType) (*Store, error) {
	cfg := keyring.Config{
		ServiceName: serviceName,
	}
	if len(allowed) > 0 {
		cfg.AllowedBackends = allowed
	}
	ring, err := keyring.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("keyringstore: open: %w", err)
	}
	return &Store{ring: ring, keyPrefix: keyPrefix}, nil
}

func (s *Store) fullKey(key string) string {
	return s.keyPrefix + "." + key
}

func (s *Store) Load(key string) ([]byte, error) {
	item, err := s.ring.Get(s.fullKey(key))
	if errors.Is(err, keyring.ErrKeyNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("keyringstore: load %s: %w", key, err)
	}
	return item.Data, nil
}

func (s *Store) Save(key string, value []byte) error {
	if err := s.ring.Set(keyring.Item{
		Key:  s.fullKey(key),
		Data: value,
	}); err != nil {
		return fmt.Errorf("keyringstore: save %s: %w", key, err)
	}
	return nil
}

func (s *Store) Remove(key string) error {
	if err := s.ring.Remove(s.fullKey(key)); err != nil {
		return fmt.Errorf("keyringstore: remove %s: %w", key, err)
	}
	return nil
}
