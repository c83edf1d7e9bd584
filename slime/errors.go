package slime

import "errors"

var (
	// ErrConfiguration reports a body that cannot be constructed from its Config.
	ErrConfiguration = errors.New("invalid body configuration")
	// ErrInvalidInput reports a rejected Advance call. Body state is left untouched.
	ErrInvalidInput = errors.New("invalid input")
)
