package storage

import "errors"

// ErrNotFound is returned by Load when no value exists for a key
var ErrNotFound = errors.New("storage: key not found")

// Store is a key-value blob transport. One logical record per entity
// collection, holding the full serialized collection. Durability beyond
// a single machine is out of scope.
type Store interface {
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
	Delete(key string) error
}

// Keyspace builds versioned namespace keys. A version bump simply starts
// from the seed dataset; no migration between versions exists.
type Keyspace struct {
	Namespace string
	Version   string
}

// DefaultKeyspace matches the historical persistence layout
var DefaultKeyspace = Keyspace{Namespace: "techstock", Version: "v2"}

// Key returns the storage key for a collection name
func (k Keyspace) Key(collection string) string {
	return k.Namespace + "_" + k.Version + "_" + collection
}
