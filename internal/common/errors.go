// Package common defines shared constants and sentinel errors used across
// client and server layers of orgmanager. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Validation errors, checked in this order on registration.
	ErrMissingFields       = errors.New("all fields must be filled")
	ErrInvalidIdentifier   = errors.New("email is not valid")
	ErrWeakSecret          = errors.New("password not strong enough")
	ErrDuplicateIdentifier = errors.New("email already in use")

	// Authentication errors. Unknown identifier and wrong secret share one value.
	ErrInvalidCredentials = errors.New("invalid login credentials")

	ErrUnknownAccountClass = errors.New("unknown account class")
)

// kinds lists the sentinels that may cross the transport boundary as
// plain text and be restored on the other side.
var kinds = []error{
	ErrMissingFields,
	ErrInvalidIdentifier,
	ErrWeakSecret,
	ErrDuplicateIdentifier,
	ErrInvalidCredentials,
	ErrUnknownAccountClass,
}

// ErrorFromMessage returns the sentinel whose text equals msg, or nil.
func ErrorFromMessage(msg string) error {
	for _, k := range kinds {
		if k.Error() == msg {
			return k
		}
	}
	return nil
}
