package geosphere

import "github.com/cockroachdb/errors"

var (
	// ErrInvalidInput is returned when an operation is handed arguments it
	// cannot work with, such as a non-positive densify interval or a points
	// layer.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUndefinedReference is returned when a layer has no spatial
	// reference.
	ErrUndefinedReference = errors.New("undefined spatial reference")
)
