package gridio

import "errors"

var (
	// ErrBadMagic indicates a DIPHA stream that does not start with 8067171840.
	ErrBadMagic = errors.New("gridio: bad DIPHA magic number")

	// ErrBadType indicates a DIPHA stream of a type other than an image.
	ErrBadType = errors.New("gridio: DIPHA stream is not an image")

	// ErrTruncated indicates a stream that ended before all values were read.
	ErrTruncated = errors.New("gridio: truncated input")

	// ErrFormat indicates a malformed header or value.
	ErrFormat = errors.New("gridio: malformed input")

	// ErrUnknownFormat indicates a format name or file extension that maps
	// to no reader.
	ErrUnknownFormat = errors.New("gridio: unknown format")
)
