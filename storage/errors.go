package storage

import "errors"

var (
	// ErrNotFound is returned when a reference names no file.
	ErrNotFound = errors.New("storage: image not found")

	// ErrNotImage is returned when the referenced file is not an image.
	ErrNotImage = errors.New("storage: not an image")

	// ErrInvalidRef is returned for empty names and references escaping
	// the store root.
	ErrInvalidRef = errors.New("storage: invalid image reference")
)
