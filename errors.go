package pathanim

import "errors"

// Sentinel errors for the pathanim package.
var (
	// ErrEmptyPath is returned when a path would be created without points.
	ErrEmptyPath = errors.New("pathanim: path has no points")

	// ErrPathNotFound is returned when a session has no path with the given id.
	ErrPathNotFound = errors.New("pathanim: path not found")

	// ErrNotRegenerable is returned when a path carries no generator
	// parameters that can be re-run at a different point count.
	ErrNotRegenerable = errors.New("pathanim: path cannot be regenerated")

	// ErrDegenerate is returned when a generator produced no points.
	ErrDegenerate = errors.New("pathanim: degenerate geometry")

	// ErrInvalidCanvas is returned for non-positive canvas dimensions.
	ErrInvalidCanvas = errors.New("pathanim: invalid canvas size")
)
