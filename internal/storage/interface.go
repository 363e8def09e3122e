// File: internal/storage/interface.go
package storage

import "errors"

// ErrNotFound is returned by Get when a key has no stored value.
var ErrNotFound = errors.New("storage: key not found")

// Store is the synchronous, string-keyed persistence surface the client
// keeps its state in: the serialized chat session collection and the auth
// token. Implementations do not need to be safe for concurrent use; the
// client drives them from a single goroutine.
type Store interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}
