package domain

import "errors"

// Error kinds. Callers wrap these with context and match them with errors.Is.
var (
	// ErrValidation marks missing or empty required caller input.
	ErrValidation = errors.New("validation error")
	// ErrAuthConfig marks absent vendor credentials.
	ErrAuthConfig = errors.New("vendor auth not configured")
	// ErrAuthRequest marks a rejected client-credentials exchange.
	ErrAuthRequest = errors.New("vendor auth request failed")
	// ErrVendorRequest marks a failed vendor call after authentication.
	ErrVendorRequest = errors.New("vendor request failed")
)
