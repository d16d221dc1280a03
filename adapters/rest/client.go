// Package rest implements the remote provider client against an
// identity-toolkit style REST API: account endpoints keyed by an API key,
// with error codes carried in the response body.
package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/gofiber/fiber/v3/client"

	"github.com/Mrzain17/storefront/core"
)

// Client implements core.ProviderClient. The provider session is kept
// client-side: sign-in and sign-out feed the SessionChanges channel the way
// the provider pushes auth-state notifications.
type Client struct {
	http    *client.Client
	apiKey  string
	baseURL string

	mu      sync.RWMutex
	session *core.ProviderSession
	idToken string
	changes chan *core.ProviderSession
}

var _ core.ProviderClient = (*Client)(nil)

// New creates a provider client from the connection config.
func New(cfg *core.ProviderConfig) *Client {
	return &Client{
		http:    client.New(),
		apiKey:  cfg.APIKey,
		baseURL: fmt.Sprintf("https://%s/v1", cfg.AuthDomain),
		changes: make(chan *core.ProviderSession, 8),
	}
}

type accountResponse struct {
	LocalID       string `json:"localId"`
	Email         string `json:"email"`
	DisplayName   string `json:"displayName"`
	PhotoURL      string `json:"photoUrl"`
	PhoneNumber   string `json:"phoneNumber"`
	EmailVerified bool   `json:"emailVerified"`
	IDToken       string `json:"idToken"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (c *Client) CreateUser(ctx context.Context, email, password string) (*core.ProviderSession, error) {
	var account accountResponse
	err := c.post(ctx, "accounts:signUp", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &account)
	if err != nil {
		return nil, err
	}
	return c.beginSession(&account), nil
}

func (c *Client) SignInWithPassword(ctx context.Context, email, password string) (*core.ProviderSession, error) {
	var account accountResponse
	err := c.post(ctx, "accounts:signInWithPassword", map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}, &account)
	if err != nil {
		return nil, err
	}
	return c.beginSession(&account), nil
}

func (c *Client) SignOut(ctx context.Context) error {
	c.mu.Lock()
	c.session = nil
	c.idToken = ""
	c.mu.Unlock()

	c.push(nil)
	return nil
}

func (c *Client) UpdateDisplayName(ctx context.Context, name string) error {
	token, err := c.token()
	if err != nil {
		return err
	}

	var account accountResponse
	if err := c.post(ctx, "accounts:update", map[string]any{
		"idToken":     token,
		"displayName": name,
	}, &account); err != nil {
		return err
	}

	c.mu.Lock()
	if c.session != nil {
		c.session.DisplayName = name
	}
	c.mu.Unlock()
	return nil
}

func (c *Client) SendEmailVerification(ctx context.Context) error {
	token, err := c.token()
	if err != nil {
		return err
	}
	return c.post(ctx, "accounts:sendOobCode", map[string]any{
		"requestType": "VERIFY_EMAIL",
		"idToken":     token,
	}, nil)
}

func (c *Client) SendPasswordReset(ctx context.Context, email string) error {
	return c.post(ctx, "accounts:sendOobCode", map[string]any{
		"requestType": "PASSWORD_RESET",
		"email":       email,
	}, nil)
}

func (c *Client) CurrentSession() *core.ProviderSession {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.session == nil {
		return nil
	}
	copied := *c.session
	return &copied
}

func (c *Client) SessionChanges() <-chan *core.ProviderSession {
	return c.changes
}

func (c *Client) beginSession(account *accountResponse) *core.ProviderSession {
	session := &core.ProviderSession{
		UID:           account.LocalID,
		Email:         account.Email,
		DisplayName:   account.DisplayName,
		PhotoURL:      account.PhotoURL,
		PhoneNumber:   account.PhoneNumber,
		EmailVerified: account.EmailVerified,
	}

	c.mu.Lock()
	c.session = session
	c.idToken = account.IDToken
	c.mu.Unlock()

	c.push(session)

	copied := *session
	return &copied
}

func (c *Client) token() (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.idToken == "" {
		return "", core.ErrNoActiveSession
	}
	return c.idToken, nil
}

// push delivers a session change without blocking; a slow listener drops
// intermediate notifications, keeping only the most recent ones.
func (c *Client) push(session *core.ProviderSession) {
	select {
	case c.changes <- session:
	default:
	}
}

// post sends a JSON request to the named account endpoint. Non-2xx
// responses are returned as ProviderError carrying the provider's code;
// transport failures surface as the NETWORK_ERROR code.
func (c *Client) post(ctx context.Context, endpoint string, payload map[string]any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := fmt.Sprintf("%s/%s?key=%s", c.baseURL, endpoint, c.apiKey)
	resp, err := c.http.Post(url, client.Config{
		Ctx:    ctx,
		Header: map[string]string{"Content-Type": "application/json"},
		Body:   body,
	})
	if err != nil {
		return &core.ProviderError{Code: "NETWORK_ERROR", Message: err.Error()}
	}
	defer resp.Close()

	if resp.StatusCode() < 200 || resp.StatusCode() >= 300 {
		var failure errorResponse
		if err := json.Unmarshal(resp.Body(), &failure); err != nil || failure.Error.Message == "" {
			return &core.ProviderError{Code: "UNKNOWN", Message: resp.String()}
		}
		return &core.ProviderError{Code: failure.Error.Message}
	}

	if out == nil {
		return nil
	}
	return json.Unmarshal(resp.Body(), out)
}
