package diagram

import "errors"

var (
	// ErrUnknownFormat indicates a file extension that maps to no encoding.
	ErrUnknownFormat = errors.New("diagram: unknown format")

	// ErrFormat indicates a malformed record or header.
	ErrFormat = errors.New("diagram: malformed input")
)
