package services

import (
	"context"
	"sync"
)

// BlobStore is the durable key-value contract the store persists through.
// A bundle is always written as one blob, so each backend write is atomic.
type BlobStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// MemoryBlobStore keeps the blob in process memory. Used by tests and by
// local demo runs without a configured backend.
type MemoryBlobStore struct {
	mu   sync.Mutex
	data []byte
	// FailSaves makes every Save return an error, for retry-path tests.
	FailSaves error
}

func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{}
}

func (m *MemoryBlobStore) Load(_ context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, ErrBlobNotFound
	}
	out := make([]byte, len(m.data))
	copy(out, m.data)
	return out, nil
}

func (m *MemoryBlobStore) Save(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSaves != nil {
		return m.FailSaves
	}
	m.data = make([]byte, len(data))
	copy(m.data, data)
	return nil
}
