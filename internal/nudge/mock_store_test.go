package nudge

import (
	"github.com/wirving/rhabits/internal/storage"
	"github.com/wirving/rhabits/pkg/habit"
)

type mockStore struct {
	habits habit.List
	err    error
}

func (m *mockStore) Load() (habit.List, error) {
	return m.habits, m.err
}

func (m *mockStore) Save(habits habit.List) error {
	m.habits = habits
	return nil
}

func (m *mockStore) Path() string {
	return "mock"
}

var _ storage.Store = (*mockStore)(nil)
