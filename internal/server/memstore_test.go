package server

import (
	"slices"
	"sync"

	"github.com/wirving/rhabits/internal/storage"
	"github.com/wirving/rhabits/pkg/habit"
)

type memStore struct {
	mu     sync.RWMutex
	habits habit.List
	err    error
}

func newMemStore(habits habit.List) *memStore {
	return &memStore{habits: habits}
}

func (m *memStore) Load() (habit.List, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.err != nil {
		return nil, m.err
	}
	return slices.Clone(m.habits), nil
}

func (m *memStore) Save(habits habit.List) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.habits = slices.Clone(habits)
	return nil
}

func (m *memStore) Path() string {
	return "mem"
}

var _ storage.Store = (*memStore)(nil)
