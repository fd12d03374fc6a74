// Package stream wraps file readers and writers with the compression
// codec implied by the file name: ".zst" for zstd, ".lz4" for LZ4 frames.
package stream

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression identifies a stream codec.
type Compression uint8

const (
	// CompressionNone passes bytes through.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 frames (fast).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses zstd frames (better ratio).
	CompressionZSTD Compression = 2
)

// String returns the file suffix of c without the dot, or "none".
func (c Compression) String() string {
	switch c {
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zst"
	case CompressionNone:
		return "none"
	}

	return fmt.Sprintf("compression(%d)", uint8(c))
}

// Detect returns the codec implied by name and name with the codec suffix
// stripped, so the caller can look at the inner extension.
func Detect(name string) (Compression, string) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".zst", ".zstd":
		return CompressionZSTD, strings.TrimSuffix(name, filepath.Ext(name))
	case ".lz4":
		return CompressionLZ4, strings.TrimSuffix(name, filepath.Ext(name))
	}

	return CompressionNone, name
}

// NewReader returns a reader decoding r according to name, and the inner
// name. Closing the returned reader releases decoder state; it never
// closes r.
func NewReader(r io.Reader, name string) (io.ReadCloser, string, error) {
	c, inner := Detect(name)
	switch c {
	case CompressionZSTD:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, "", fmt.Errorf("stream: zstd reader: %w", err)
		}
		return dec.IOReadCloser(), inner, nil
	case CompressionLZ4:
		return io.NopCloser(lz4.NewReader(r)), inner, nil
	}

	return io.NopCloser(r), inner, nil
}

// NewWriter returns a writer encoding into w according to name, and the
// inner name. Close flushes the codec's final frame; it never closes w.
func NewWriter(w io.Writer, name string) (io.WriteCloser, string, error) {
	c, inner := Detect(name)
	switch c {
	case CompressionZSTD:
		enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return nil, "", fmt.Errorf("stream: zstd writer: %w", err)
		}
		return enc, inner, nil
	case CompressionLZ4:
		return lz4.NewWriter(w), inner, nil
	}

	return nopWriteCloser{w}, inner, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
