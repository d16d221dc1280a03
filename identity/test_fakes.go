package identity

import (
	"context"
	"sync"

	"github.com/Mrzain17/storefront/core"
)

// FakeProviderClient is a test-only fake implementing core.ProviderClient.
// It records calls and exposes error fields for behavior injection.
type FakeProviderClient struct {
	mu sync.Mutex

	createErr  error
	signInErr  error
	signOutErr error
	updateErr  error

	session *core.ProviderSession
	changes chan *core.ProviderSession

	nextUID          string
	displayName      string
	sentVerification bool
	sentResets       []string
}

var _ core.ProviderClient = (*FakeProviderClient)(nil)

func NewFakeProviderClient() *FakeProviderClient {
	return &FakeProviderClient{
		nextUID: "uid-1",
		changes: make(chan *core.ProviderSession, 4),
	}
}

func (f *FakeProviderClient) CreateUser(ctx context.Context, email, password string) (*core.ProviderSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.session = &core.ProviderSession{UID: f.nextUID, Email: email}
	return f.session, nil
}

func (f *FakeProviderClient) SignInWithPassword(ctx context.Context, email, password string) (*core.ProviderSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.signInErr != nil {
		return nil, f.signInErr
	}
	f.session = &core.ProviderSession{UID: f.nextUID, Email: email, DisplayName: f.displayName}
	return f.session, nil
}

func (f *FakeProviderClient) SignOut(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.signOutErr != nil {
		return f.signOutErr
	}
	f.session = nil
	return nil
}

func (f *FakeProviderClient) UpdateDisplayName(ctx context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.updateErr != nil {
		return f.updateErr
	}
	f.displayName = name
	return nil
}

func (f *FakeProviderClient) SendEmailVerification(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sentVerification = true
	return nil
}

func (f *FakeProviderClient) SendPasswordReset(ctx context.Context, email string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sentResets = append(f.sentResets, email)
	return nil
}

func (f *FakeProviderClient) CurrentSession() *core.ProviderSession {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.session
}

func (f *FakeProviderClient) SessionChanges() <-chan *core.ProviderSession {
	return f.changes
}

// PushSession feeds a provider-pushed session change to listeners.
func (f *FakeProviderClient) PushSession(sess *core.ProviderSession) {
	f.mu.Lock()
	f.session = sess
	f.mu.Unlock()
	f.changes <- sess
}

// SetSession sets the current session without emitting a change.
func (f *FakeProviderClient) SetSession(sess *core.ProviderSession) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.session = sess
}

// FakeDocumentStore is a test-only fake implementing core.DocumentStore.
type FakeDocumentStore struct {
	mu   sync.RWMutex
	docs map[string]*core.UserProfile

	getErr error
	setErr error
}

var _ core.DocumentStore = (*FakeDocumentStore)(nil)

func NewFakeDocumentStore() *FakeDocumentStore {
	return &FakeDocumentStore{docs: make(map[string]*core.UserProfile)}
}

func (f *FakeDocumentStore) Get(ctx context.Context, userID string) (*core.UserProfile, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	doc, ok := f.docs[userID]
	if !ok {
		return nil, core.ErrDocumentNotFound
	}
	copied := *doc
	return &copied, nil
}

func (f *FakeDocumentStore) Set(ctx context.Context, userID string, profile *core.UserProfile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	copied := *profile
	f.docs[userID] = &copied
	return nil
}

func (f *FakeDocumentStore) Merge(ctx context.Context, userID string, fields map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	doc, ok := f.docs[userID]
	if !ok {
		return core.ErrDocumentNotFound
	}
	for key, value := range fields {
		switch key {
		case "name":
			doc.Name = value.(string)
		case "avatar":
			avatar := value.(string)
			doc.Avatar = &avatar
		case "phoneNumber":
			phone := value.(string)
			doc.PhoneNumber = &phone
		case "addresses":
			doc.Addresses = value.([]core.Address)
		case "preferences":
			prefs := value.(core.Preferences)
			doc.Preferences = &prefs
		}
	}
	return nil
}
