package identity

import (
	"errors"

	"github.com/Mrzain17/storefront/core"
)

// Remote provider error codes as they appear on the wire.
const (
	codeEmailExists       = "EMAIL_EXISTS"
	codeEmailNotFound     = "EMAIL_NOT_FOUND"
	codeInvalidPassword   = "INVALID_PASSWORD"
	codeInvalidLoginCreds = "INVALID_LOGIN_CREDENTIALS"
	codeWeakPassword      = "WEAK_PASSWORD"
	codeInvalidEmail      = "INVALID_EMAIL"
	codeTooManyAttempts   = "TOO_MANY_ATTEMPTS_TRY_LATER"
	codeNetworkError      = "NETWORK_ERROR"
)

// mapProviderError translates a raw provider error into the shared taxonomy
// so callers never see provider-specific codes. Unknown codes collapse to
// ErrUnknownAuth; errors that are not ProviderError pass through unchanged.
func mapProviderError(err error) error {
	if err == nil {
		return nil
	}
	var perr *core.ProviderError
	if !errors.As(err, &perr) {
		return err
	}

	switch perr.Code {
	case codeEmailExists:
		return core.ErrDuplicateAccount
	case codeEmailNotFound:
		return core.ErrUserNotFound
	case codeInvalidPassword:
		return core.ErrWrongPassword
	case codeInvalidLoginCreds:
		return core.ErrInvalidCredentials
	case codeWeakPassword:
		return core.ErrWeakPassword
	case codeInvalidEmail:
		return core.ErrInvalidEmail
	case codeTooManyAttempts:
		return core.ErrTooManyRequests
	case codeNetworkError:
		return core.ErrNetwork
	default:
		return core.ErrUnknownAuth
	}
}
