package core

import "errors"

// Authentication errors, user-facing. The remote provider's error codes are
// mapped 1:1 onto these; unmapped codes collapse to ErrUnknownAuth.
var (
	ErrDuplicateAccount   = errors.New("an account with this email already exists") // 409 Conflict
	ErrInvalidCredentials = errors.New("invalid email or password")                 // 401 Unauthorized
	ErrUserNotFound       = errors.New("no account found with this email address")  // 401
	ErrWrongPassword      = errors.New("incorrect password")                        // 401
	ErrWeakPassword       = errors.New("password should be at least 6 characters")  // 400
	ErrInvalidEmail       = errors.New("invalid email address")                     // 400
	ErrTooManyRequests    = errors.New("too many failed attempts, please try again later")
	ErrNetwork            = errors.New("network error, please check your connection")
	ErrUnknownAuth        = errors.New("an error occurred, please try again")
)

// Session errors
var (
	ErrNoActiveSession = errors.New("no user signed in") // 401
	ErrSignOutFailed   = errors.New("failed to sign out")
)

// Port errors
var (
	ErrAccountNotFound  = errors.New("account not found")
	ErrDocumentNotFound = errors.New("user profile not found")
	ErrStateNotFound    = errors.New("state entry not found")
)

// Validation errors (client input)
var (
	ErrEmailRequired      = errors.New("email is required")    // 400
	ErrPasswordRequired   = errors.New("password is required") // 400
	ErrNameRequired       = errors.New("name is required")     // 400
	ErrProductIDRequired  = errors.New("product id is required")
	ErrInvalidPrice       = errors.New("price must not be negative")
	ErrInvalidQuantity    = errors.New("quantity must not be negative")
	ErrOriginalBelowPrice = errors.New("original price must not be below current price")
)

// Config errors (wiring, not user input)
var (
	ErrStorageRequired = errors.New("state storage is required") // 500
)
