// Package identity implements the dual-mode identity gateway: a remote
// provider-backed service and a deterministic in-memory mock, both behind
// the same contract.
package identity

import (
	"time"

	"github.com/Mrzain17/storefront/core"
)

// MockConfig configures the fallback gateway.
type MockConfig struct {
	Credentials core.CredentialStore
	Passwords   core.PasswordHandler
	Delay       time.Duration
}

// Select picks the gateway implementation once, at construction. Remote mode
// requires a constructed provider client, a document store, and a complete
// provider config; anything less routes every operation to the mock service
// for the life of the process.
func Select(cfg *core.ProviderConfig, client core.ProviderClient, docs core.DocumentStore, mock MockConfig) core.IdentityProvider {
	if cfg.Complete() && client != nil && docs != nil {
		return NewRemoteService(client, docs)
	}
	return NewMockService(mock.Credentials, mock.Passwords, mock.Delay)
}
