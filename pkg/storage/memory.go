// Package storage provides StateStorage implementations for store snapshots.
package storage

import (
	"sync"

	"github.com/Mrzain17/storefront/core"
)

// Memory is an in-memory StateStorage. Useful for tests and for running
// without any persistence directory.
type Memory struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

var _ core.StateStorage = (*Memory)(nil)

// NewMemory creates an empty in-memory state storage.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string][]byte)}
}

func (m *Memory) Load(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.entries[name]
	if !ok {
		return nil, core.ErrStateNotFound
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

func (m *Memory) Store(name string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]byte, len(data))
	copy(stored, data)
	m.entries[name] = stored
	return nil
}

func (m *Memory) Delete(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, name)
	return nil
}

// Len returns the number of stored entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
