package identity

import (
	"sync"
	"time"

	"github.com/Mrzain17/storefront/core"
)

// MemoryCredentials is the in-memory credential table used in mock mode.
// Injected as a core.CredentialStore so tests can supply isolated instances
// instead of sharing process-wide state.
type MemoryCredentials struct {
	mu      sync.RWMutex
	records map[string]*core.CredentialRecord // key: email, case-sensitive
}

var _ core.CredentialStore = (*MemoryCredentials)(nil)

// NewMemoryCredentials creates an empty credential table.
func NewMemoryCredentials() *MemoryCredentials {
	return &MemoryCredentials{records: make(map[string]*core.CredentialRecord)}
}

func (m *MemoryCredentials) Lookup(email string) (*core.CredentialRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	record, ok := m.records[email]
	if !ok {
		return nil, core.ErrAccountNotFound
	}
	return record, nil
}

func (m *MemoryCredentials) Insert(email string, record *core.CredentialRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.records[email]; ok {
		return core.ErrDuplicateAccount
	}
	m.records[email] = record
	return nil
}

// Demo account credentials available in mock mode.
const (
	DemoEmail    = "demo@example.com"
	DemoPassword = "password123"
)

// SeedDemoAccount inserts the demo account into creds. Safe to call on a
// table that already contains it.
func SeedDemoAccount(creds core.CredentialStore, passwords core.PasswordHandler) error {
	hash, err := passwords.Hash(DemoPassword)
	if err != nil {
		return err
	}

	avatar := "/placeholder.svg?height=40&width=40"
	record := &core.CredentialRecord{
		PasswordHash: hash,
		Profile: &core.UserProfile{
			ID:            "1",
			Email:         DemoEmail,
			Name:          "Demo User",
			Avatar:        &avatar,
			CreatedAt:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			EmailVerified: true,
			Addresses:     []core.Address{},
			Preferences:   core.DefaultPreferences(),
		},
	}

	err = creds.Insert(DemoEmail, record)
	if err == core.ErrDuplicateAccount {
		return nil
	}
	return err
}
