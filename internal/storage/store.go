package storage

import (
	"errors"

	"github.com/wirving/rhabits/pkg/habit"
)

// ErrMalformed is wrapped by Load when the persisted data can't be decoded.
// Implementations return it together with an empty list so callers can warn
// the user instead of silently discarding whatever is on disk.
var ErrMalformed = errors.New("malformed habit store")

// Store persists the habit list wholesale: one Load at command start, one
// Save after mutation. There is no locking; concurrent invocations race and
// the last writer wins.
type Store interface {
	Load() (habit.List, error)
	Save(habits habit.List) error
	Path() string
}
