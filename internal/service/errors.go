package service

import "errors"

// Business errors surfaced by the auth and listing services. Each one is
// converted into a user-visible notification at the point of origin; none
// propagate further.
var (
	// ErrInvalidCredentials is returned when the login lookup found no
	// matching user. Unknown email and wrong password deliberately collapse
	// into this single error.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrPasswordMismatch is returned when signup's two password fields
	// disagree. Checked before any persistence attempt.
	ErrPasswordMismatch = errors.New("passwords do not match")

	// ErrDuplicateAccount is returned when the signup email is already
	// present in the user collection.
	ErrDuplicateAccount = errors.New("account with this email already exists")

	// ErrInvalidListing is returned when a sell submission is missing a
	// title or carries a negative price.
	ErrInvalidListing = errors.New("invalid listing data")
)
