package shared

import "errors"

var (
	// ErrNotFound indicates resource not found.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCredentials indicates login failure.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrEmptyQuery occurs when a verification query is blank after trimming.
	ErrEmptyQuery = errors.New("query must not be empty")
	// ErrInvalidTransition occurs when a report status value is outside the
	// closed enumeration. Unreachable under the permissive lifecycle policy,
	// reserved for a stricter one.
	ErrInvalidTransition = errors.New("invalid status transition")
)
