package core

import "context"

// Ports define interfaces for external dependencies

// ============================================
// IDENTITY PORT (gateway contract)
// ============================================

// IdentityProvider is the single dispatch point for credential and profile
// operations. Callers never branch on provider availability: the remote and
// mock implementations share this contract and the choice between them is
// made once, at construction.
type IdentityProvider interface {
	SignUp(ctx context.Context, name, email, password string) (*UserProfile, error)
	SignIn(ctx context.Context, email, password string) (*UserProfile, error)
	SignOut(ctx context.Context) error

	UpdateProfile(ctx context.Context, update ProfileUpdate) error
	ResetPassword(ctx context.Context, email string) error
	CurrentUser(ctx context.Context) (*UserProfile, error)

	AddAddress(ctx context.Context, addr Address) error
	UpdateAddress(ctx context.Context, id string, update AddressUpdate) error
	UpdatePreferences(ctx context.Context, prefs Preferences) error
}

// ============================================
// STORAGE PORTS
// ============================================

// CredentialStore is the mock-mode credential table, keyed by email
// (case-sensitive). Injected so tests can supply isolated instances.
type CredentialStore interface {
	Lookup(email string) (*CredentialRecord, error)
	Insert(email string, record *CredentialRecord) error
}

// DocumentStore holds the mirrored profile documents, keyed by user id.
type DocumentStore interface {
	Get(ctx context.Context, userID string) (*UserProfile, error)
	Set(ctx context.Context, userID string, profile *UserProfile) error
	Merge(ctx context.Context, userID string, fields map[string]any) error
}

// StateStorage is named key-value persistence for store snapshots.
// Last write wins; there is no versioning or migration logic.
type StateStorage interface {
	Load(name string) ([]byte, error)
	Store(name string, data []byte) error
	Delete(name string) error
}

// Names of the persisted state entries.
const (
	CartStateName = "cart-storage"
	AuthStateName = "auth-storage"
)

// ============================================
// REMOTE PROVIDER PORT
// ============================================

// ProviderClient is the call contract of the remote identity provider.
// It is an external collaborator; implementations live in adapters.
type ProviderClient interface {
	CreateUser(ctx context.Context, email, password string) (*ProviderSession, error)
	SignInWithPassword(ctx context.Context, email, password string) (*ProviderSession, error)
	SignOut(ctx context.Context) error

	UpdateDisplayName(ctx context.Context, name string) error
	SendEmailVerification(ctx context.Context) error
	SendPasswordReset(ctx context.Context, email string) error

	// CurrentSession returns the active provider session, or nil when no
	// user is signed in.
	CurrentSession() *ProviderSession

	// SessionChanges delivers provider-pushed session change notifications.
	// A nil element means the session ended.
	SessionChanges() <-chan *ProviderSession
}

// ============================================
// CRYPTO PORT
// ============================================

// PasswordHandler hashes and verifies credential passwords.
type PasswordHandler interface {
	Hash(password string) (string, error)
	Verify(password, hash string) (bool, error)
}
