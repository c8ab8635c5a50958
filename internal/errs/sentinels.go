// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Validation failures, reported to the caller with a specific reason.
var (
	// ErrInvalidContact indicates the contact is neither an email nor a Telegram handle.
	ErrInvalidContact = errors.New("contact must be email or Telegram handle")

	// ErrPasswordRequired indicates an email registration without a password.
	ErrPasswordRequired = errors.New("password required for email registration")

	// ErrPasswordNotAllowed indicates a Telegram registration with a password.
	ErrPasswordNotAllowed = errors.New("password not allowed for Telegram registration")

	// ErrConsentRequired indicates registration without the consent flag.
	ErrConsentRequired = errors.New("consent required")

	// ErrValidation is wrapped by miscellaneous input-validation failures.
	ErrValidation = errors.New("validation")
)

// State conflicts, reported to the caller as conflicts.
var (
	// ErrContactTaken indicates a registration with an already-used contact.
	ErrContactTaken = errors.New("contact already taken")

	// ErrAlreadySubmitted indicates a second submission for the same (user, quest).
	ErrAlreadySubmitted = errors.New("quest already submitted")
)

// Authentication failures. Login failures are reported uniformly so callers
// cannot distinguish an unknown contact from a wrong password.
var (
	// ErrInvalidCredentials indicates a failed login (unknown contact or wrong password).
	ErrInvalidCredentials = errors.New("invalid contact or password")

	// ErrTokenExpired indicates a token past its expiry.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenMalformed indicates a token with an invalid signature or structure.
	ErrTokenMalformed = errors.New("token malformed")

	// ErrTokenInvalid indicates any other token decode failure.
	ErrTokenInvalid = errors.New("token invalid")

	// ErrForbidden indicates the authenticated subject lacks the required role.
	ErrForbidden = errors.New("forbidden")

	// ErrRateLimited indicates temporary login lock due to rate limiting.
	ErrRateLimited = errors.New("rate limited")
)

// Not-found failures.
var (
	// ErrQuestNotFound indicates the referenced quest does not exist.
	ErrQuestNotFound = errors.New("quest not found")

	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")
)
