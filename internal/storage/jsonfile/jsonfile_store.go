// Package jsonfile stores the habit list as a pretty-printed JSON array in a
// single file under the per-user data directory.
package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"

	"github.com/wirving/rhabits/internal/storage"
	"github.com/wirving/rhabits/pkg/habit"
)

type Store struct {
	path string
}

// Open prepares the store file, creating the directory and seeding an empty
// list if the file doesn't exist yet.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(path, []byte("[]\n"), 0o644); err != nil {
			return nil, fmt.Errorf("seed habit store: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("stat habit store: %w", err)
	}
	return &Store{path: path}, nil
}

// DefaultPath resolves the platform's per-user data directory:
// $XDG_DATA_HOME (or ~/.local/share), ~/Library/Application Support on
// macOS, %APPDATA% on Windows.
func DefaultPath() (string, error) {
	var base string
	switch runtime.GOOS {
	case "windows":
		base = os.Getenv("APPDATA")
		if base == "" {
			return "", errors.New("APPDATA is not set")
		}
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, "Library", "Application Support")
	default:
		base = os.Getenv("XDG_DATA_HOME")
		if base == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return "", err
			}
			base = filepath.Join(home, ".local", "share")
		}
	}
	return filepath.Join(base, "rhabits", "habits.json"), nil
}

func (s *Store) Load() (habit.List, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read habit store: %w", err)
	}

	var habits habit.List
	if err := json.Unmarshal(data, &habits); err != nil {
		return habit.List{}, fmt.Errorf("%w (%s): %v", storage.ErrMalformed, s.path, err)
	}
	return habits, nil
}

func (s *Store) Save(habits habit.List) error {
	if habits == nil {
		habits = habit.List{}
	}
	data, err := json.MarshalIndent(habits, "", "  ")
	if err != nil {
		return fmt.Errorf("encode habit store: %w", err)
	}
	if err := os.WriteFile(s.path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write habit store: %w", err)
	}
	return nil
}

func (s *Store) Path() string {
	return s.path
}

var _ storage.Store = (*Store)(nil)
