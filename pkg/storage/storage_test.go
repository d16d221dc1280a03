package storage

import (
	"errors"
	"testing"

	"github.com/Mrzain17/storefront/core"
)

// Requirement: both implementations round-trip named entries and report
// missing names with ErrStateNotFound.
func TestStateStorage(t *testing.T) {
	tests := []struct {
		name string
		make func(t *testing.T) core.StateStorage
	}{
		{
			name: "memory",
			make: func(t *testing.T) core.StateStorage { return NewMemory() },
		},
		{
			name: "file",
			make: func(t *testing.T) core.StateStorage {
				f, err := NewFile(t.TempDir())
				if err != nil {
					t.Fatalf("NewFile: %v", err)
				}
				return f
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s := test.make(t)

			if _, err := s.Load("missing"); !errors.Is(err, core.ErrStateNotFound) {
				t.Errorf("Load(missing) error = %v, want ErrStateNotFound", err)
			}

			if err := s.Store("cart-storage", []byte(`{"a":1}`)); err != nil {
				t.Fatalf("Store: %v", err)
			}
			data, err := s.Load("cart-storage")
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if string(data) != `{"a":1}` {
				t.Errorf("Load = %q, want %q", data, `{"a":1}`)
			}

			// Last write wins
			if err := s.Store("cart-storage", []byte(`{"a":2}`)); err != nil {
				t.Fatalf("Store: %v", err)
			}
			data, _ = s.Load("cart-storage")
			if string(data) != `{"a":2}` {
				t.Errorf("Load after overwrite = %q, want %q", data, `{"a":2}`)
			}

			if err := s.Delete("cart-storage"); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if _, err := s.Load("cart-storage"); !errors.Is(err, core.ErrStateNotFound) {
				t.Errorf("Load after Delete error = %v, want ErrStateNotFound", err)
			}
			if err := s.Delete("cart-storage"); err != nil {
				t.Errorf("Delete on missing entry = %v, want nil", err)
			}
		})
	}
}

// Requirement: file storage survives reopening the same directory.
func TestFile_Reopen(t *testing.T) {
	dir := t.TempDir()

	first, err := NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	if err := first.Store("auth-storage", []byte(`{"user":null}`)); err != nil {
		t.Fatalf("Store: %v", err)
	}

	second, err := NewFile(dir)
	if err != nil {
		t.Fatalf("NewFile: %v", err)
	}
	data, err := second.Load("auth-storage")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(data) != `{"user":null}` {
		t.Errorf("Load = %q, want %q", data, `{"user":null}`)
	}
}
