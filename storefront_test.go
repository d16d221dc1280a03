package storefront

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Mrzain17/storefront/identity"
	"github.com/Mrzain17/storefront/pkg/storage"
)

func zeroDelay() *time.Duration {
	d := time.Duration(0)
	return &d
}

// Requirement: New rejects a config without state storage.
func TestNew_RequiresStorage(t *testing.T) {
	_, err := New(Config{})
	if !errors.Is(err, ErrStorageRequired) {
		t.Fatalf("New() error = %v, want ErrStorageRequired", err)
	}
}

// Requirement: without a complete provider config the storefront runs in
// mock mode with the seeded demo account.
func TestNew_MockModeDefaults(t *testing.T) {
	sf, err := New(Config{
		Storage:   storage.NewMemory(),
		MockDelay: zeroDelay(),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx := context.Background()
	profile, err := sf.Auth.SignIn(ctx, identity.DemoEmail, identity.DemoPassword)
	if err != nil {
		t.Fatalf("SignIn with demo credentials: %v", err)
	}
	if profile.Name != "Demo User" {
		t.Errorf("profile name = %q, want Demo User", profile.Name)
	}

	_, err = sf.Auth.SignIn(ctx, identity.DemoEmail, "wrong")
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("SignIn(wrong password) error = %v, want ErrInvalidCredentials", err)
	}
}

// Requirement: an incomplete provider config forces mock mode even when a
// client and document store are wired.
func TestNew_IncompleteProviderConfig(t *testing.T) {
	sf, err := New(Config{
		Provider:  &ProviderConfig{APIKey: "key-only"},
		Client:    identity.NewFakeProviderClient(),
		Documents: identity.NewFakeDocumentStore(),
		Storage:   storage.NewMemory(),
		MockDelay: zeroDelay(),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, ok := sf.Identity.(*identity.MockService); !ok {
		t.Errorf("gateway is %T, want *identity.MockService", sf.Identity)
	}
}

// Requirement: a complete provider config with client and documents selects
// the remote gateway.
func TestNew_RemoteMode(t *testing.T) {
	sf, err := New(Config{
		Provider:  &ProviderConfig{APIKey: "k", AuthDomain: "auth.example.com", ProjectID: "p"},
		Client:    identity.NewFakeProviderClient(),
		Documents: identity.NewFakeDocumentStore(),
		Storage:   storage.NewMemory(),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, ok := sf.Identity.(*identity.RemoteService); !ok {
		t.Errorf("gateway is %T, want *identity.RemoteService", sf.Identity)
	}
}

// Requirement: the cart and auth stores share the configured storage, and
// both survive a rebuild of the storefront.
func TestNew_StoresShareStorage(t *testing.T) {
	store := storage.NewMemory()

	sf, err := New(Config{Storage: store, MockDelay: zeroDelay()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	sf.Cart.AddItem(LineItem{ID: "p1", Title: "Widget", Price: 10, InStock: true})
	if _, err := sf.Auth.SignIn(context.Background(), identity.DemoEmail, identity.DemoPassword); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	rebuilt, err := New(Config{Storage: store, MockDelay: zeroDelay()})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := rebuilt.Cart.ItemQuantity("p1"); got != 1 {
		t.Errorf("rebuilt cart quantity = %d, want 1", got)
	}
	if state := rebuilt.Auth.State(); !state.Authenticated || state.User == nil {
		t.Errorf("rebuilt auth state = %+v, want authenticated", state)
	}
}
