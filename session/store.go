// Package session implements the reactive auth session store wrapping the
// identity gateway.
package session

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/Mrzain17/storefront/core"
)

// State is the observable auth state. Only User and Authenticated are
// persisted; Loading is transient and always false after a restore.
type State struct {
	User          *core.UserProfile
	Authenticated bool
	Loading       bool
}

// Options configures the store.
type Options struct {
	// Storage persists the auth snapshot. Nil disables persistence.
	Storage core.StateStorage

	// DropStaleUpdates attaches a monotonic sequence token to every
	// state-mutating operation and discards commits that were overtaken by
	// a newer one. Off by default, which preserves the historical
	// last-writer-wins behavior of racing sign-ins and push notifications.
	DropStaleUpdates bool
}

// Store wraps the identity gateway with reactive state, observer callbacks,
// and a persisted projection of {user, isAuthenticated}.
//
// Gateway calls are suspension points: a second SignIn started before the
// first resolves is neither queued nor rejected. Without DropStaleUpdates
// the last resolver wins.
type Store struct {
	identity core.IdentityProvider
	storage  core.StateStorage

	mu        sync.RWMutex
	state     State
	subs      []func(State)
	dropStale bool
	nextToken uint64
	applied   uint64
}

// NewStore creates the auth store and restores any persisted snapshot.
func NewStore(identity core.IdentityProvider, opts Options) *Store {
	s := &Store{
		identity:  identity,
		storage:   opts.Storage,
		dropStale: opts.DropStaleUpdates,
	}
	s.restore()
	return s
}

// State returns a copy of the current auth state.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers fn to run after every state commit. fn receives a
// snapshot and must not call back into the store.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// newToken issues the next sequence token.
func (s *Store) newToken() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextToken++
	return s.nextToken
}

// apply commits a mutation under token. When DropStaleUpdates is on, a
// commit that has been overtaken by a newer token is discarded.
func (s *Store) apply(token uint64, mutate func(*State)) {
	s.mu.Lock()
	if s.dropStale && token < s.applied {
		s.mu.Unlock()
		return
	}
	mutate(&s.state)
	if token > s.applied {
		s.applied = token
	}
	snapshot := s.state
	s.persistLocked()
	subs := append([]func(State){}, s.subs...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

// SignIn authenticates through the gateway. On failure the loading flag is
// cleared and the error re-raised unchanged; no retries.
func (s *Store) SignIn(ctx context.Context, email, password string) (*core.UserProfile, error) {
	s.apply(s.newToken(), func(st *State) { st.Loading = true })

	profile, err := s.identity.SignIn(ctx, email, password)

	// The commit token is issued at resolution time so that whichever call
	// resolves last wins, regardless of start order.
	token := s.newToken()
	if err != nil {
		s.apply(token, func(st *State) { st.Loading = false })
		return nil, err
	}

	s.apply(token, func(st *State) {
		st.User = profile
		st.Authenticated = true
		st.Loading = false
	})
	return profile, nil
}

// SignUp registers through the gateway and signs the new user in locally.
func (s *Store) SignUp(ctx context.Context, name, email, password string) (*core.UserProfile, error) {
	s.apply(s.newToken(), func(st *State) { st.Loading = true })

	profile, err := s.identity.SignUp(ctx, name, email, password)

	token := s.newToken()
	if err != nil {
		s.apply(token, func(st *State) { st.Loading = false })
		return nil, err
	}

	s.apply(token, func(st *State) {
		st.User = profile
		st.Authenticated = true
		st.Loading = false
	})
	return profile, nil
}

// SignOut delegates to the gateway and clears local state only on success:
// a failed remote sign-out must not silently log the user out locally.
func (s *Store) SignOut(ctx context.Context) error {
	if err := s.identity.SignOut(ctx); err != nil {
		return err
	}
	s.apply(s.newToken(), func(st *State) {
		st.User = nil
		st.Authenticated = false
		st.Loading = false
	})
	return nil
}

// ResetPassword delegates the reset-email dispatch. It never touches local
// state.
func (s *Store) ResetPassword(ctx context.Context, email string) error {
	return s.identity.ResetPassword(ctx, email)
}

// UpdateProfile delegates and merges the partial into the cached profile.
func (s *Store) UpdateProfile(ctx context.Context, update core.ProfileUpdate) error {
	if err := s.identity.UpdateProfile(ctx, update); err != nil {
		return err
	}
	s.apply(s.newToken(), func(st *State) {
		if st.User == nil {
			return
		}
		user := *st.User
		update.Apply(&user)
		st.User = &user
	})
	return nil
}

// UpdatePreferences delegates and merges the preferences into the cached
// profile.
func (s *Store) UpdatePreferences(ctx context.Context, prefs core.Preferences) error {
	if err := s.identity.UpdatePreferences(ctx, prefs); err != nil {
		return err
	}
	s.apply(s.newToken(), func(st *State) {
		if st.User == nil {
			return
		}
		user := *st.User
		user.Preferences = &prefs
		st.User = &user
	})
	return nil
}

// AddAddress delegates, then re-fetches the full profile so server-assigned
// address ids are reflected locally.
func (s *Store) AddAddress(ctx context.Context, addr core.Address) error {
	if err := s.identity.AddAddress(ctx, addr); err != nil {
		return err
	}
	return s.refreshUser(ctx)
}

// UpdateAddress delegates, then re-fetches the full profile.
func (s *Store) UpdateAddress(ctx context.Context, id string, update core.AddressUpdate) error {
	if err := s.identity.UpdateAddress(ctx, id, update); err != nil {
		return err
	}
	return s.refreshUser(ctx)
}

// refreshUser overwrites the cached profile with the gateway's view. A nil
// result (mock mode has no session) leaves the cached profile untouched.
func (s *Store) refreshUser(ctx context.Context) error {
	profile, err := s.identity.CurrentUser(ctx)
	if err != nil {
		return err
	}
	if profile == nil {
		return nil
	}
	s.apply(s.newToken(), func(st *State) { st.User = profile })
	return nil
}

// Watch mirrors provider-pushed session changes into the store. Remote mode
// only; it returns when ctx is done or the channel closes. This is the one
// externally-triggered mutation path and it can race with in-flight SignIn
// or SignUp calls; see Options.DropStaleUpdates.
func (s *Store) Watch(ctx context.Context, client core.ProviderClient) {
	changes := client.SessionChanges()
	for {
		select {
		case <-ctx.Done():
			return
		case sess, ok := <-changes:
			if !ok {
				return
			}
			token := s.newToken()
			if sess == nil {
				s.apply(token, func(st *State) {
					st.User = nil
					st.Authenticated = false
					st.Loading = false
				})
				continue
			}
			profile, err := s.identity.CurrentUser(ctx)
			if err != nil || profile == nil {
				profile = core.ProfileFromSession(sess)
			}
			s.apply(token, func(st *State) {
				st.User = profile
				st.Authenticated = true
				st.Loading = false
			})
		}
	}
}

// persistLocked writes the {user, isAuthenticated} projection while holding
// the write lock. The loading flag is never persisted, and a persistence
// failure never fails the mutation.
func (s *Store) persistLocked() {
	if s.storage == nil {
		return
	}
	data, err := json.Marshal(core.AuthSnapshot{
		User:          s.state.User,
		Authenticated: s.state.Authenticated,
	})
	if err != nil {
		return
	}
	_ = s.storage.Store(core.AuthStateName, data)
}

func (s *Store) restore() {
	if s.storage == nil {
		return
	}
	data, err := s.storage.Load(core.AuthStateName)
	if err != nil {
		return
	}
	var snapshot core.AuthSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return
	}
	s.state = State{
		User:          snapshot.User,
		Authenticated: snapshot.Authenticated,
		Loading:       false,
	}
}
