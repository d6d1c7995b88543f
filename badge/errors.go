package badge

import "errors"

// Sentinel errors for the badge package.
var (
	// ErrInvalidSize is returned when the requested badge size is not in
	// [1, MaxSize].
	ErrInvalidSize = errors.New("badge: invalid size")

	// ErrUnknownVariant is returned by ParseVariant for unrecognized names.
	ErrUnknownVariant = errors.New("badge: unknown variant")
)
