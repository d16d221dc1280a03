package identity

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Mrzain17/storefront/core"
)

// RemoteService is the gateway backed by the remote identity provider and
// its document store. Every account keeps a mirrored profile document keyed
// by the provider-issued user id.
type RemoteService struct {
	client core.ProviderClient
	docs   core.DocumentStore
}

var _ core.IdentityProvider = (*RemoteService)(nil)

// NewRemoteService creates the remote gateway.
func NewRemoteService(client core.ProviderClient, docs core.DocumentStore) *RemoteService {
	return &RemoteService{client: client, docs: docs}
}

func (r *RemoteService) SignUp(ctx context.Context, name, email, password string) (*core.UserProfile, error) {
	sess, err := r.client.CreateUser(ctx, email, password)
	if err != nil {
		return nil, mapProviderError(err)
	}

	if err := r.client.UpdateDisplayName(ctx, name); err != nil {
		return nil, mapProviderError(err)
	}

	profile := &core.UserProfile{
		ID:            sess.UID,
		Email:         sess.Email,
		Name:          name,
		CreatedAt:     time.Now().UTC(),
		EmailVerified: sess.EmailVerified,
		Addresses:     []core.Address{},
		Preferences:   core.DefaultPreferences(),
	}

	if err := r.docs.Set(ctx, sess.UID, profile); err != nil {
		return nil, fmt.Errorf("failed to write profile document: %w", err)
	}

	if err := r.client.SendEmailVerification(ctx); err != nil {
		return nil, mapProviderError(err)
	}

	return profile, nil
}

func (r *RemoteService) SignIn(ctx context.Context, email, password string) (*core.UserProfile, error) {
	sess, err := r.client.SignInWithPassword(ctx, email, password)
	if err != nil {
		return nil, mapProviderError(err)
	}

	profile, err := r.docs.Get(ctx, sess.UID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, core.ErrDocumentNotFound) {
		return nil, fmt.Errorf("failed to read profile document: %w", err)
	}

	// Accounts created before the document store existed have no mirrored
	// document yet; create one from the provider session.
	profile = core.ProfileFromSession(sess)
	if err := r.docs.Set(ctx, sess.UID, profile); err != nil {
		return nil, fmt.Errorf("failed to write profile document: %w", err)
	}
	return profile, nil
}

func (r *RemoteService) SignOut(ctx context.Context) error {
	if err := r.client.SignOut(ctx); err != nil {
		return fmt.Errorf("%w: %v", core.ErrSignOutFailed, err)
	}
	return nil
}

func (r *RemoteService) UpdateProfile(ctx context.Context, update core.ProfileUpdate) error {
	sess := r.client.CurrentSession()
	if sess == nil {
		return core.ErrNoActiveSession
	}

	if update.Name != nil {
		if err := r.client.UpdateDisplayName(ctx, *update.Name); err != nil {
			return mapProviderError(err)
		}
	}

	fields := map[string]any{"updatedAt": time.Now().UTC()}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Avatar != nil {
		fields["avatar"] = *update.Avatar
	}
	if update.PhoneNumber != nil {
		fields["phoneNumber"] = *update.PhoneNumber
	}

	if err := r.docs.Merge(ctx, sess.UID, fields); err != nil {
		return fmt.Errorf("failed to update profile document: %w", err)
	}
	return nil
}

func (r *RemoteService) ResetPassword(ctx context.Context, email string) error {
	if err := r.client.SendPasswordReset(ctx, email); err != nil {
		return mapProviderError(err)
	}
	return nil
}

func (r *RemoteService) CurrentUser(ctx context.Context) (*core.UserProfile, error) {
	sess := r.client.CurrentSession()
	if sess == nil {
		return nil, nil
	}

	profile, err := r.docs.Get(ctx, sess.UID)
	if err == nil {
		return profile, nil
	}
	if errors.Is(err, core.ErrDocumentNotFound) {
		return core.ProfileFromSession(sess), nil
	}
	return nil, fmt.Errorf("failed to read profile document: %w", err)
}

func (r *RemoteService) AddAddress(ctx context.Context, addr core.Address) error {
	sess := r.client.CurrentSession()
	if sess == nil {
		return core.ErrNoActiveSession
	}

	profile, err := r.docs.Get(ctx, sess.UID)
	if err != nil {
		return err
	}

	addr.ID = uuid.NewString()
	addresses := append(profile.Addresses, addr)

	if err := r.docs.Merge(ctx, sess.UID, map[string]any{"addresses": addresses}); err != nil {
		return fmt.Errorf("failed to update addresses: %w", err)
	}
	return nil
}

func (r *RemoteService) UpdateAddress(ctx context.Context, id string, update core.AddressUpdate) error {
	sess := r.client.CurrentSession()
	if sess == nil {
		return core.ErrNoActiveSession
	}

	profile, err := r.docs.Get(ctx, sess.UID)
	if err != nil {
		return err
	}

	addresses := make([]core.Address, len(profile.Addresses))
	copy(addresses, profile.Addresses)
	for i := range addresses {
		if addresses[i].ID == id {
			update.Apply(&addresses[i])
		}
	}

	if err := r.docs.Merge(ctx, sess.UID, map[string]any{"addresses": addresses}); err != nil {
		return fmt.Errorf("failed to update addresses: %w", err)
	}
	return nil
}

func (r *RemoteService) UpdatePreferences(ctx context.Context, prefs core.Preferences) error {
	sess := r.client.CurrentSession()
	if sess == nil {
		return core.ErrNoActiveSession
	}

	if err := r.docs.Merge(ctx, sess.UID, map[string]any{"preferences": prefs}); err != nil {
		return fmt.Errorf("failed to update preferences: %w", err)
	}
	return nil
}
