package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/Mrzain17/storefront/core"
	"github.com/Mrzain17/storefront/pkg/crypto"
)

// Requirement: remote sign-up creates the provider account, sets the display
// name, writes the mirrored document, and sends a verification email.
func TestRemoteService_SignUp(t *testing.T) {
	ctx := context.Background()
	client := NewFakeProviderClient()
	docs := NewFakeDocumentStore()
	service := NewRemoteService(client, docs)

	profile, err := service.SignUp(ctx, "Alice", "alice@example.com", "SecurePass123!")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if profile.ID != "uid-1" || profile.Name != "Alice" {
		t.Errorf("profile = %+v, want uid-1 / Alice", profile)
	}
	if client.displayName != "Alice" {
		t.Errorf("provider display name = %q, want Alice", client.displayName)
	}
	if !client.sentVerification {
		t.Error("verification email was not sent")
	}

	mirrored, err := docs.Get(ctx, "uid-1")
	if err != nil {
		t.Fatalf("mirrored document missing: %v", err)
	}
	if mirrored.Email != "alice@example.com" {
		t.Errorf("mirrored email = %q, want alice@example.com", mirrored.Email)
	}
}

// Requirement: provider error codes are mapped onto the taxonomy before
// being raised.
func TestRemoteService_SignUpProviderError(t *testing.T) {
	client := NewFakeProviderClient()
	client.createErr = &core.ProviderError{Code: "EMAIL_EXISTS"}
	service := NewRemoteService(client, NewFakeDocumentStore())

	_, err := service.SignUp(context.Background(), "Alice", "alice@example.com", "pw123456")
	if !errors.Is(err, core.ErrDuplicateAccount) {
		t.Errorf("SignUp error = %v, want ErrDuplicateAccount", err)
	}
}

// Requirement: remote sign-in returns the mirrored document when present and
// lazily creates one from the provider session when missing.
func TestRemoteService_SignIn(t *testing.T) {
	ctx := context.Background()

	t.Run("returns existing mirrored document", func(t *testing.T) {
		client := NewFakeProviderClient()
		docs := NewFakeDocumentStore()
		stored := &core.UserProfile{ID: "uid-1", Email: "alice@example.com", Name: "Stored Name"}
		_ = docs.Set(ctx, "uid-1", stored)

		service := NewRemoteService(client, docs)
		profile, err := service.SignIn(ctx, "alice@example.com", "pw123456")
		if err != nil {
			t.Fatalf("SignIn: %v", err)
		}
		if profile.Name != "Stored Name" {
			t.Errorf("profile name = %q, want Stored Name", profile.Name)
		}
	})

	t.Run("creates missing mirrored document", func(t *testing.T) {
		client := NewFakeProviderClient()
		client.displayName = "Alice"
		docs := NewFakeDocumentStore()

		service := NewRemoteService(client, docs)
		profile, err := service.SignIn(ctx, "alice@example.com", "pw123456")
		if err != nil {
			t.Fatalf("SignIn: %v", err)
		}
		if profile.ID != "uid-1" || profile.Name != "Alice" {
			t.Errorf("derived profile = %+v, want uid-1 / Alice", profile)
		}
		if _, err := docs.Get(ctx, "uid-1"); err != nil {
			t.Errorf("mirrored document was not created: %v", err)
		}
	})

	t.Run("maps invalid credentials", func(t *testing.T) {
		client := NewFakeProviderClient()
		client.signInErr = &core.ProviderError{Code: "INVALID_PASSWORD"}

		service := NewRemoteService(client, NewFakeDocumentStore())
		_, err := service.SignIn(ctx, "alice@example.com", "wrong")
		if !errors.Is(err, core.ErrWrongPassword) {
			t.Errorf("SignIn error = %v, want ErrWrongPassword", err)
		}
	})
}

// Requirement: a failed provider sign-out is fatal to the caller and carries
// ErrSignOutFailed.
func TestRemoteService_SignOutFailure(t *testing.T) {
	client := NewFakeProviderClient()
	client.signOutErr = errors.New("provider unavailable")
	service := NewRemoteService(client, NewFakeDocumentStore())

	err := service.SignOut(context.Background())
	if !errors.Is(err, core.ErrSignOutFailed) {
		t.Errorf("SignOut error = %v, want ErrSignOutFailed", err)
	}
}

// Requirement: profile, address, and preference mutations require an active
// session.
func TestRemoteService_RequiresSession(t *testing.T) {
	ctx := context.Background()
	client := NewFakeProviderClient() // no session
	service := NewRemoteService(client, NewFakeDocumentStore())

	name := "New Name"
	tests := []struct {
		name string
		call func() error
	}{
		{"UpdateProfile", func() error { return service.UpdateProfile(ctx, core.ProfileUpdate{Name: &name}) }},
		{"AddAddress", func() error { return service.AddAddress(ctx, core.Address{Type: core.AddressShipping}) }},
		{"UpdateAddress", func() error { return service.UpdateAddress(ctx, "a1", core.AddressUpdate{}) }},
		{"UpdatePreferences", func() error { return service.UpdatePreferences(ctx, *core.DefaultPreferences()) }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if err := test.call(); !errors.Is(err, core.ErrNoActiveSession) {
				t.Errorf("%s error = %v, want ErrNoActiveSession", test.name, err)
			}
		})
	}
}

// Requirement: UpdateProfile updates the display name and merges the partial
// into the mirrored document.
func TestRemoteService_UpdateProfile(t *testing.T) {
	ctx := context.Background()
	client := NewFakeProviderClient()
	client.SetSession(&core.ProviderSession{UID: "uid-1", Email: "alice@example.com"})
	docs := NewFakeDocumentStore()
	_ = docs.Set(ctx, "uid-1", &core.UserProfile{ID: "uid-1", Email: "alice@example.com", Name: "Alice"})

	service := NewRemoteService(client, docs)

	name := "Alice Cooper"
	phone := "+15551234"
	if err := service.UpdateProfile(ctx, core.ProfileUpdate{Name: &name, PhoneNumber: &phone}); err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}

	if client.displayName != "Alice Cooper" {
		t.Errorf("provider display name = %q, want Alice Cooper", client.displayName)
	}
	doc, _ := docs.Get(ctx, "uid-1")
	if doc.Name != "Alice Cooper" {
		t.Errorf("mirrored name = %q, want Alice Cooper", doc.Name)
	}
	if doc.PhoneNumber == nil || *doc.PhoneNumber != "+15551234" {
		t.Errorf("mirrored phone = %v, want +15551234", doc.PhoneNumber)
	}
}

// Requirement: AddAddress assigns an id and appends to the mirrored address
// list; UpdateAddress merges into the matching entry and ignores misses.
func TestRemoteService_Addresses(t *testing.T) {
	ctx := context.Background()
	client := NewFakeProviderClient()
	client.SetSession(&core.ProviderSession{UID: "uid-1"})
	docs := NewFakeDocumentStore()
	_ = docs.Set(ctx, "uid-1", &core.UserProfile{ID: "uid-1", Addresses: []core.Address{}})

	service := NewRemoteService(client, docs)

	addr := core.Address{Type: core.AddressShipping, Name: "Home", Street: "1 Main St", City: "Springfield"}
	if err := service.AddAddress(ctx, addr); err != nil {
		t.Fatalf("AddAddress: %v", err)
	}

	doc, _ := docs.Get(ctx, "uid-1")
	if len(doc.Addresses) != 1 {
		t.Fatalf("len(addresses) = %d, want 1", len(doc.Addresses))
	}
	if doc.Addresses[0].ID == "" {
		t.Error("address id was not assigned")
	}

	city := "Shelbyville"
	if err := service.UpdateAddress(ctx, doc.Addresses[0].ID, core.AddressUpdate{City: &city}); err != nil {
		t.Fatalf("UpdateAddress: %v", err)
	}
	doc, _ = docs.Get(ctx, "uid-1")
	if doc.Addresses[0].City != "Shelbyville" {
		t.Errorf("city = %q, want Shelbyville", doc.Addresses[0].City)
	}
	if doc.Addresses[0].Street != "1 Main St" {
		t.Errorf("street mutated: %q", doc.Addresses[0].Street)
	}

	// Unknown address id leaves the list untouched and reports no error.
	if err := service.UpdateAddress(ctx, "missing", core.AddressUpdate{City: &city}); err != nil {
		t.Errorf("UpdateAddress(missing) = %v, want nil", err)
	}
}

// Requirement: CurrentUser returns nil without a session, the mirrored
// document when present, and a session-derived profile otherwise.
func TestRemoteService_CurrentUser(t *testing.T) {
	ctx := context.Background()

	client := NewFakeProviderClient()
	docs := NewFakeDocumentStore()
	service := NewRemoteService(client, docs)

	user, err := service.CurrentUser(ctx)
	if err != nil || user != nil {
		t.Errorf("CurrentUser without session = (%+v, %v), want (nil, nil)", user, err)
	}

	client.SetSession(&core.ProviderSession{UID: "uid-1", Email: "alice@example.com", DisplayName: "Alice"})
	user, err = service.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	if user == nil || user.Name != "Alice" {
		t.Errorf("session-derived profile = %+v, want name Alice", user)
	}

	_ = docs.Set(ctx, "uid-1", &core.UserProfile{ID: "uid-1", Name: "Mirrored"})
	user, err = service.CurrentUser(ctx)
	if err != nil {
		t.Fatalf("CurrentUser: %v", err)
	}
	if user.Name != "Mirrored" {
		t.Errorf("profile name = %q, want Mirrored", user.Name)
	}
}

// Requirement: every documented provider code maps 1:1 onto the taxonomy and
// unknown codes collapse to ErrUnknownAuth.
func TestMapProviderError(t *testing.T) {
	tests := []struct {
		code string
		want error
	}{
		{"EMAIL_EXISTS", core.ErrDuplicateAccount},
		{"EMAIL_NOT_FOUND", core.ErrUserNotFound},
		{"INVALID_PASSWORD", core.ErrWrongPassword},
		{"INVALID_LOGIN_CREDENTIALS", core.ErrInvalidCredentials},
		{"WEAK_PASSWORD", core.ErrWeakPassword},
		{"INVALID_EMAIL", core.ErrInvalidEmail},
		{"TOO_MANY_ATTEMPTS_TRY_LATER", core.ErrTooManyRequests},
		{"NETWORK_ERROR", core.ErrNetwork},
		{"SOMETHING_NOVEL", core.ErrUnknownAuth},
	}

	for _, test := range tests {
		t.Run(test.code, func(t *testing.T) {
			got := mapProviderError(&core.ProviderError{Code: test.code})
			if !errors.Is(got, test.want) {
				t.Errorf("mapProviderError(%s) = %v, want %v", test.code, got, test.want)
			}
		})
	}

	plain := errors.New("not a provider error")
	if got := mapProviderError(plain); got != plain {
		t.Errorf("non-provider error was rewritten: %v", got)
	}
	if got := mapProviderError(nil); got != nil {
		t.Errorf("mapProviderError(nil) = %v, want nil", got)
	}
}

// Requirement: the gateway implementation is chosen once at construction:
// remote only with a complete config, a client, and a document store.
func TestSelect(t *testing.T) {
	complete := &core.ProviderConfig{APIKey: "k", AuthDomain: "auth.example.com", ProjectID: "p"}
	client := NewFakeProviderClient()
	docs := NewFakeDocumentStore()
	mock := MockConfig{Credentials: NewMemoryCredentials(), Passwords: crypto.NewBcrypt()}

	tests := []struct {
		name       string
		cfg        *core.ProviderConfig
		client     core.ProviderClient
		docs       core.DocumentStore
		wantRemote bool
	}{
		{"complete config with deps", complete, client, docs, true},
		{"nil config", nil, client, docs, false},
		{"incomplete config", &core.ProviderConfig{APIKey: "k"}, client, docs, false},
		{"missing client", complete, nil, docs, false},
		{"missing document store", complete, client, nil, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			gateway := Select(test.cfg, test.client, test.docs, mock)
			_, isRemote := gateway.(*RemoteService)
			if isRemote != test.wantRemote {
				t.Errorf("Select() remote = %v, want %v", isRemote, test.wantRemote)
			}
		})
	}
}
