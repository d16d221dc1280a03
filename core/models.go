package core

import "time"

// LineItem is one product entry in the cart together with its quantity.
//
// At most one line item exists per product id; adding the same product
// again increments the quantity instead of duplicating the entry.
type LineItem struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	Image         string   `json:"image"`
	Quantity      int      `json:"quantity"`
	InStock       bool     `json:"inStock"`
}

// NewLineItem validates a line item before it enters the cart.
//
// OriginalPrice, when present, must be at least the current price - it is
// the pre-discount sticker price, never a markdown below what is charged.
func NewLineItem(item LineItem) (*LineItem, error) {
	if item.ID == "" {
		return nil, ErrProductIDRequired
	}
	if item.Price < 0 {
		return nil, ErrInvalidPrice
	}
	if item.OriginalPrice != nil && *item.OriginalPrice < item.Price {
		return nil, ErrOriginalBelowPrice
	}
	if item.Quantity < 0 {
		return nil, ErrInvalidQuantity
	}
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	return &item, nil
}

// UserProfile represents a customer account.
//
// This is the "identity" - who someone is. In remote mode it mirrors the
// provider's stored document; in mock mode it lives in the credential table.
type UserProfile struct {
	ID            string       `json:"id"`
	Email         string       `json:"email"`
	Name          string       `json:"name"`
	Avatar        *string      `json:"avatar,omitempty"`
	CreatedAt     time.Time    `json:"createdAt"`
	EmailVerified bool         `json:"emailVerified"`
	PhoneNumber   *string      `json:"phoneNumber,omitempty"`
	Addresses     []Address    `json:"addresses"`
	Preferences   *Preferences `json:"preferences,omitempty"`
}

// Address types
const (
	AddressShipping = "shipping"
	AddressBilling  = "billing"
)

// Address is a shipping or billing address owned by a profile.
type Address struct {
	ID        string `json:"id"`
	Type      string `json:"type"` // "shipping" or "billing"
	Name      string `json:"name"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
	IsDefault bool   `json:"isDefault"`
}

// AddressUpdate is a partial address mutation. Nil fields are left untouched.
type AddressUpdate struct {
	Type      *string `json:"type,omitempty"`
	Name      *string `json:"name,omitempty"`
	Street    *string `json:"street,omitempty"`
	City      *string `json:"city,omitempty"`
	State     *string `json:"state,omitempty"`
	ZipCode   *string `json:"zipCode,omitempty"`
	Country   *string `json:"country,omitempty"`
	IsDefault *bool   `json:"isDefault,omitempty"`
}

// Apply merges the set fields of the update into addr.
func (u AddressUpdate) Apply(addr *Address) {
	if u.Type != nil {
		addr.Type = *u.Type
	}
	if u.Name != nil {
		addr.Name = *u.Name
	}
	if u.Street != nil {
		addr.Street = *u.Street
	}
	if u.City != nil {
		addr.City = *u.City
	}
	if u.State != nil {
		addr.State = *u.State
	}
	if u.ZipCode != nil {
		addr.ZipCode = *u.ZipCode
	}
	if u.Country != nil {
		addr.Country = *u.Country
	}
	if u.IsDefault != nil {
		addr.IsDefault = *u.IsDefault
	}
}

// Notifications holds per-channel notification opt-ins.
type Notifications struct {
	Email     bool `json:"email"`
	SMS       bool `json:"sms"`
	Push      bool `json:"push"`
	Marketing bool `json:"marketing"`
}

// Preferences holds notification and locale settings for a profile.
type Preferences struct {
	Notifications Notifications `json:"notifications"`
	Language      string        `json:"language"`
	Currency      string        `json:"currency"`
}

// DefaultPreferences returns the preferences assigned to new accounts.
func DefaultPreferences() *Preferences {
	return &Preferences{
		Notifications: Notifications{
			Email:     true,
			SMS:       false,
			Push:      true,
			Marketing: false,
		},
		Language: "en",
		Currency: "USD",
	}
}

// ProfileUpdate is a partial profile mutation. Nil fields are left untouched.
type ProfileUpdate struct {
	Name        *string `json:"name,omitempty"`
	Avatar      *string `json:"avatar,omitempty"`
	PhoneNumber *string `json:"phoneNumber,omitempty"`
}

// Apply merges the set fields of the update into profile.
func (u ProfileUpdate) Apply(profile *UserProfile) {
	if u.Name != nil {
		profile.Name = *u.Name
	}
	if u.Avatar != nil {
		profile.Avatar = u.Avatar
	}
	if u.PhoneNumber != nil {
		profile.PhoneNumber = u.PhoneNumber
	}
}

// AuthSnapshot is the persisted projection of the auth session state.
//
// Only the user and the authenticated flag survive a restart; transient
// flags like loading are deliberately excluded.
type AuthSnapshot struct {
	User          *UserProfile `json:"user"`
	Authenticated bool         `json:"isAuthenticated"`
}

// CredentialRecord is one row of the mock-mode credential table.
//
// This is the "credential" - how someone proves who they are when no
// remote provider is configured.
type CredentialRecord struct {
	PasswordHash string       `json:"-"` // Never expose in JSON
	Profile      *UserProfile `json:"profile"`
}

// ProviderSession is the minimal account view the remote provider exposes
// for the currently signed-in user.
type ProviderSession struct {
	UID           string    `json:"uid"`
	Email         string    `json:"email"`
	DisplayName   string    `json:"displayName"`
	PhotoURL      string    `json:"photoUrl"`
	PhoneNumber   string    `json:"phoneNumber"`
	EmailVerified bool      `json:"emailVerified"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ProfileFromSession derives a UserProfile from the minimal provider-session
// fields. Used when no mirrored document exists for the account yet.
func ProfileFromSession(sess *ProviderSession) *UserProfile {
	profile := &UserProfile{
		ID:            sess.UID,
		Email:         sess.Email,
		Name:          sess.DisplayName,
		CreatedAt:     sess.CreatedAt,
		EmailVerified: sess.EmailVerified,
		Addresses:     []Address{},
	}
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}
	if sess.PhotoURL != "" {
		photo := sess.PhotoURL
		profile.Avatar = &photo
	}
	if sess.PhoneNumber != "" {
		phone := sess.PhoneNumber
		profile.PhoneNumber = &phone
	}
	return profile
}

// ProviderError carries a raw remote provider error code. The identity
// layer maps known codes onto the shared error taxonomy.
type ProviderError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Code + ": " + e.Message
}
