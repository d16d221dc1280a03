package identity

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Mrzain17/storefront/core"
)

// DefaultMockDelay is the simulated latency of mock sign-up and sign-in,
// large enough to make UI loading states observable.
const DefaultMockDelay = time.Second

// MockService is the in-memory fallback gateway, used whenever the remote
// provider is unreachable or unconfigured. It has no session concept:
// CurrentUser always returns nil and profile mutations are no-op successes.
type MockService struct {
	creds     core.CredentialStore
	passwords core.PasswordHandler
	delay     time.Duration
}

var _ core.IdentityProvider = (*MockService)(nil)

// NewMockService creates the mock gateway. delay is applied to sign-up and
// sign-in only; pass 0 in tests.
func NewMockService(creds core.CredentialStore, passwords core.PasswordHandler, delay time.Duration) *MockService {
	return &MockService{creds: creds, passwords: passwords, delay: delay}
}

// wait simulates the provider round-trip latency.
func (m *MockService) wait(ctx context.Context) error {
	if m.delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(m.delay):
		return nil
	}
}

func (m *MockService) SignUp(ctx context.Context, name, email, password string) (*core.UserProfile, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}
	if email == "" {
		return nil, core.ErrEmailRequired
	}
	if password == "" {
		return nil, core.ErrPasswordRequired
	}

	if _, err := m.creds.Lookup(email); err == nil {
		return nil, core.ErrDuplicateAccount
	} else if err != core.ErrAccountNotFound {
		return nil, fmt.Errorf("failed to check existing account: %w", err)
	}

	hash, err := m.passwords.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	profile := &core.UserProfile{
		ID:            uuid.NewString(),
		Email:         email,
		Name:          name,
		CreatedAt:     time.Now().UTC(),
		EmailVerified: false,
		Addresses:     []core.Address{},
		Preferences:   core.DefaultPreferences(),
	}

	if err := m.creds.Insert(email, &core.CredentialRecord{
		PasswordHash: hash,
		Profile:      profile,
	}); err != nil {
		return nil, err
	}

	return profile, nil
}

func (m *MockService) SignIn(ctx context.Context, email, password string) (*core.UserProfile, error) {
	if err := m.wait(ctx); err != nil {
		return nil, err
	}

	record, err := m.creds.Lookup(email)
	if err != nil {
		if err == core.ErrAccountNotFound {
			return nil, core.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	ok, err := m.passwords.Verify(password, record.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return nil, core.ErrInvalidCredentials
	}

	return record.Profile, nil
}

func (m *MockService) SignOut(ctx context.Context) error {
	return ctx.Err()
}

func (m *MockService) UpdateProfile(ctx context.Context, update core.ProfileUpdate) error {
	// No-op success: the credential table is not mutated in mock mode.
	return ctx.Err()
}

func (m *MockService) ResetPassword(ctx context.Context, email string) error {
	// Always succeeds without sending anything.
	return ctx.Err()
}

func (m *MockService) CurrentUser(ctx context.Context) (*core.UserProfile, error) {
	// Mock mode has no session concept.
	return nil, ctx.Err()
}

func (m *MockService) AddAddress(ctx context.Context, addr core.Address) error {
	return ctx.Err()
}

func (m *MockService) UpdateAddress(ctx context.Context, id string, update core.AddressUpdate) error {
	return ctx.Err()
}

func (m *MockService) UpdatePreferences(ctx context.Context, prefs core.Preferences) error {
	return ctx.Err()
}
