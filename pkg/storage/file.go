package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Mrzain17/storefront/core"
)

// File persists each named entry as its own file under dir. Writes go
// through a temp file and rename, so a crashed write never leaves a
// half-written snapshot behind. Last write wins.
type File struct {
	dir string
	mu  sync.Mutex
}

var _ core.StateStorage = (*File)(nil)

// NewFile creates a file-backed state storage rooted at dir, creating the
// directory if needed.
func NewFile(dir string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create state directory: %w", err)
	}
	return &File{dir: dir}, nil
}

func (f *File) Load(name string) ([]byte, error) {
	data, err := os.ReadFile(f.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, core.ErrStateNotFound
		}
		return nil, err
	}
	return data, nil
}

func (f *File) Store(name string, data []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	tmp, err := os.CreateTemp(f.dir, name+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), f.path(name))
}

func (f *File) Delete(name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	err := os.Remove(f.path(name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (f *File) path(name string) string {
	return filepath.Join(f.dir, name+".json")
}
