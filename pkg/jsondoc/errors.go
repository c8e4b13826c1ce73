package jsondoc

import "github.com/pkg/errors"

var (
	// ErrTypeMismatch is returned when a Value is narrowed to a variant it
	// does not hold, or when a path helper meets the wrong container type
	// partway down a path.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrInvalidKey is returned for object keys that are not valid UTF-8.
	ErrInvalidKey = errors.New("invalid key")

	// ErrConversion is returned when primitive text cannot be parsed as the
	// requested scalar type.
	ErrConversion = errors.New("conversion failed")
)
