package contact

import "errors"

var (
	// ErrInvalidCredential is returned when the supplied password does not
	// match the configured admin secret, or no secret is configured at all.
	ErrInvalidCredential = errors.New("contact: invalid admin credential")

	// ErrInvalidNumber is returned when a submitted phone cannot be brought
	// into canonical form.
	ErrInvalidNumber = errors.New("contact: phone cannot be normalized")

	// ErrStoreUnavailable is returned when a mutation cannot reach the
	// record store. Reads never return it; they degrade to defaults.
	ErrStoreUnavailable = errors.New("contact: record store unavailable")
)
