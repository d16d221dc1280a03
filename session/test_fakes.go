package session

import (
	"context"
	"sync"

	"github.com/Mrzain17/storefront/core"
)

// FakeGateway is a test-only fake implementing core.IdentityProvider with
// scriptable behavior per operation. Unset functions fall back to benign
// defaults.
type FakeGateway struct {
	mu sync.Mutex

	SignInFn      func(ctx context.Context, email, password string) (*core.UserProfile, error)
	SignUpFn      func(ctx context.Context, name, email, password string) (*core.UserProfile, error)
	CurrentUserFn func(ctx context.Context) (*core.UserProfile, error)

	SignOutErr error
	UpdateErr  error

	addedAddresses []core.Address
}

var _ core.IdentityProvider = (*FakeGateway)(nil)

func NewFakeGateway() *FakeGateway {
	return &FakeGateway{}
}

func (f *FakeGateway) SignIn(ctx context.Context, email, password string) (*core.UserProfile, error) {
	if f.SignInFn != nil {
		return f.SignInFn(ctx, email, password)
	}
	return &core.UserProfile{ID: "uid-" + email, Email: email}, nil
}

func (f *FakeGateway) SignUp(ctx context.Context, name, email, password string) (*core.UserProfile, error) {
	if f.SignUpFn != nil {
		return f.SignUpFn(ctx, name, email, password)
	}
	return &core.UserProfile{ID: "uid-" + email, Email: email, Name: name}, nil
}

func (f *FakeGateway) SignOut(ctx context.Context) error {
	return f.SignOutErr
}

func (f *FakeGateway) UpdateProfile(ctx context.Context, update core.ProfileUpdate) error {
	return f.UpdateErr
}

func (f *FakeGateway) ResetPassword(ctx context.Context, email string) error {
	return nil
}

func (f *FakeGateway) CurrentUser(ctx context.Context) (*core.UserProfile, error) {
	if f.CurrentUserFn != nil {
		return f.CurrentUserFn(ctx)
	}
	return nil, nil
}

func (f *FakeGateway) AddAddress(ctx context.Context, addr core.Address) error {
	if f.UpdateErr != nil {
		return f.UpdateErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.addedAddresses = append(f.addedAddresses, addr)
	return nil
}

func (f *FakeGateway) UpdateAddress(ctx context.Context, id string, update core.AddressUpdate) error {
	return f.UpdateErr
}

func (f *FakeGateway) UpdatePreferences(ctx context.Context, prefs core.Preferences) error {
	return f.UpdateErr
}
