// Package crypto provides the password hashing implementation used by the
// mock credential table.
package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/Mrzain17/storefront/core"
)

// Bcrypt hashes passwords with bcrypt. Credential passwords are never
// stored in the clear, even in the in-memory mock table.
type Bcrypt struct {
	Cost int
}

// Ensure Bcrypt implements PasswordHandler
var _ core.PasswordHandler = (*Bcrypt)(nil)

// NewBcrypt creates a Bcrypt handler with the library default cost.
func NewBcrypt() *Bcrypt {
	return &Bcrypt{Cost: bcrypt.DefaultCost}
}

func (b *Bcrypt) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.Cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (b *Bcrypt) Verify(password, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
