package controller

import "errors"

var (
	// ErrBackendUnavailable signals a missing backend capability. It is a
	// fatal configuration error raised at construction, not routed to the
	// error sink.
	ErrBackendUnavailable = errors.New("controller: backend capability unavailable")
	// ErrEmptyIdentifier signals a blank (after trim) identifier at submit
	// or resend time.
	ErrEmptyIdentifier = errors.New("controller: identifier is empty")
	// ErrConfirmationFailed is synthesized when the backend resolves without
	// an error but reports an unconfirmed result.
	ErrConfirmationFailed = errors.New("controller: confirmation rejected")
	// ErrSubmitInFlight rejects a second confirm while one is pending.
	ErrSubmitInFlight = errors.New("controller: confirm already in flight")
)
