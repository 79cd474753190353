package domain

// Store defines the interface for the underlying key-value persistence layer.
// Each collection lives under a single key whose value is a JSON-encoded
// array of documents. Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the value stored under key, or (nil, nil) if the key
	// is absent. An absent key is not an error.
	Get(key string) ([]byte, error)

	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error

	// Delete removes key. Deleting an absent key is a no-op.
	Delete(key string) error

	// Keys returns all keys currently present in the store.
	Keys() ([]string, error)

	// String returns the backend name, for diagnostics.
	String() string

	// Close releases any resources held by the store.
	Close() error
}
