package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrLoginRequired indicates the caller must be authenticated first.
	ErrLoginRequired = errors.New("login required")
	// ErrEmptyCart indicates checkout cannot start with no cart lines.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrInvalidTransition indicates a checkout step change that is not permitted.
	ErrInvalidTransition = errors.New("invalid checkout transition")
)
