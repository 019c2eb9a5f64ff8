package repository

import (
	"context"
	"slices"
	"sync"
)

type memoryBackend struct {
	mu    sync.RWMutex
	state []byte
}

func NewMemory() Backend {
	return &memoryBackend{}
}

func (m *memoryBackend) Read(_ context.Context) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.state == nil {
		return nil, ErrStateNotFound
	}

	return slices.Clone(m.state), nil
}

func (m *memoryBackend) Write(_ context.Context, state []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = slices.Clone(state)

	return nil
}

func (m *memoryBackend) Name() string {
	return StoreMemory
}
