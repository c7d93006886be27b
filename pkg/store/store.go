// Package store defines the persistence port the core uses to load and save
// the local private key and any per-domain session state that should survive
// a process restart, plus two adapters: an in-memory store for tests and
// embedded hosts without durable storage, and a system-keyring-backed store
// for desktop hosts.
package store

import "errors"

// Well-known keys the core reads and writes through a Store.
const (
	KeyPrivateKey         = "private_key"
	KeySessionVCSEC       = "session_vcsec"
	KeySessionInfotainment = "session_infotainment"
)

// ErrNotFound indicates the requested key has no stored value.
var ErrNotFound = errors.New("store: key not found")

//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mock_store.go -package=store

// Store loads, saves, and removes opaque byte blobs by key. Implementations
// need not be safe for concurrent use; the command engine that owns a Store
// runs single-threaded.
type Store interface {
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
	Remove(key string) error
}
