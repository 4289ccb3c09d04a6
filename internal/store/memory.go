package store

import "context"

// MemoryBlob is an in-memory Blob, used in tests and as a scratch backing
// when no database path is configured.
type MemoryBlob struct {
	values map[string]string
}

// NewMemoryBlob creates an empty in-memory blob.
func NewMemoryBlob() *MemoryBlob {
	return &MemoryBlob{values: make(map[string]string)}
}

// Get returns the stored value, or the empty string when absent.
func (m *MemoryBlob) Get(_ context.Context, key string) (string, error) {
	return m.values[key], nil
}

// Put stores the value under key.
func (m *MemoryBlob) Put(_ context.Context, key, value string) error {
	m.values[key] = value
	return nil
}

// Close is a no-op.
func (m *MemoryBlob) Close() error {
	return nil
}
