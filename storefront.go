// Package storefront wires the cart store, the dual-mode identity gateway,
// and the auth session store into a single storefront core.
package storefront

import (
	"time"

	"github.com/Mrzain17/storefront/cart"
	"github.com/Mrzain17/storefront/core"
	"github.com/Mrzain17/storefront/identity"
	"github.com/Mrzain17/storefront/pkg/crypto"
	"github.com/Mrzain17/storefront/pkg/storage"
	"github.com/Mrzain17/storefront/session"
)

// interfaces
type (
	IdentityProvider = core.IdentityProvider
	CredentialStore  = core.CredentialStore
	DocumentStore    = core.DocumentStore
	ProviderClient   = core.ProviderClient
	StateStorage     = core.StateStorage
	PasswordHandler  = core.PasswordHandler
)

// structs
type (
	ProviderConfig = core.ProviderConfig

	LineItem     = core.LineItem
	UserProfile  = core.UserProfile
	Address      = core.Address
	Preferences  = core.Preferences
	AuthSnapshot = core.AuthSnapshot
)

// Constructors & helpers (convenience re-exports)
var (
	NewLineItem           = core.NewLineItem
	DefaultPreferences    = core.DefaultPreferences
	ProviderConfigFromEnv = core.ProviderConfigFromEnv

	NewMemoryStorage     = storage.NewMemory
	NewFileStorage       = storage.NewFile
	NewMemoryCredentials = identity.NewMemoryCredentials
	NewBcrypt            = crypto.NewBcrypt
)

var (
	ErrDuplicateAccount   = core.ErrDuplicateAccount
	ErrInvalidCredentials = core.ErrInvalidCredentials
	ErrUserNotFound       = core.ErrUserNotFound
	ErrWrongPassword      = core.ErrWrongPassword
	ErrWeakPassword       = core.ErrWeakPassword
	ErrInvalidEmail       = core.ErrInvalidEmail
	ErrTooManyRequests    = core.ErrTooManyRequests
	ErrNetwork            = core.ErrNetwork
	ErrUnknownAuth        = core.ErrUnknownAuth
)

var (
	ErrNoActiveSession = core.ErrNoActiveSession
	ErrSignOutFailed   = core.ErrSignOutFailed
)

var (
	ErrStorageRequired = core.ErrStorageRequired
)

// Config configures the storefront core. Storage is required; everything
// else has a sensible default. Remote mode needs Provider, Client, and
// Documents together - anything less runs the mock gateway.
type Config struct {
	// Remote provider wiring
	Provider  *core.ProviderConfig
	Client    core.ProviderClient
	Documents core.DocumentStore

	// Persistence for the cart and auth snapshots
	Storage core.StateStorage

	// Mock-mode knobs
	Credentials core.CredentialStore
	Passwords   core.PasswordHandler
	MockDelay   *time.Duration // nil means identity.DefaultMockDelay

	// DropStaleUpdates enables sequenced auth-state commits; see
	// session.Options.
	DropStaleUpdates bool
}

// Storefront bundles the wired stores.
type Storefront struct {
	Identity core.IdentityProvider
	Auth     *session.Store
	Cart     *cart.Store
}

func New(config Config) (*Storefront, error) {
	if config.Storage == nil {
		return nil, ErrStorageRequired
	}

	// Set Defaults

	passwords := config.Passwords
	if passwords == nil {
		passwords = crypto.NewBcrypt()
	}

	creds := config.Credentials
	if creds == nil {
		creds = identity.NewMemoryCredentials()
		if err := identity.SeedDemoAccount(creds, passwords); err != nil {
			return nil, err
		}
	}

	delay := identity.DefaultMockDelay
	if config.MockDelay != nil {
		delay = *config.MockDelay
	}

	gateway := identity.Select(config.Provider, config.Client, config.Documents, identity.MockConfig{
		Credentials: creds,
		Passwords:   passwords,
		Delay:       delay,
	})

	auth := session.NewStore(gateway, session.Options{
		Storage:          config.Storage,
		DropStaleUpdates: config.DropStaleUpdates,
	})

	return &Storefront{
		Identity: gateway,
		Auth:     auth,
		Cart:     cart.NewStore(config.Storage),
	}, nil
}
