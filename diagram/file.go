package diagram

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/cubicalripser/cubical"
	"github.com/katalvlaran/cubicalripser/internal/stream"
)

// Encode writes pairs to w in the encoding implied by name: ".csv" for
// CSV, ".dipha", ".diagram" or ".bin" for DIPHA, after any compression
// suffix.
func Encode(w io.Writer, name string, pairs []cubical.Pair) error {
	wc, inner, err := stream.NewWriter(w, name)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(inner)) {
	case ".csv":
		err = WriteCSV(wc, pairs)
	case ".dipha", ".diagram", ".bin":
		err = WriteDIPHA(wc, pairs)
	default:
		err = fmt.Errorf("extension of %q: %w", inner, ErrUnknownFormat)
	}
	if cerr := wc.Close(); err == nil {
		err = cerr
	}

	return err
}

// Decode reads pairs from r in the encoding implied by name.
func Decode(r io.Reader, name string) ([]cubical.Pair, error) {
	rc, inner, err := stream.NewReader(r, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	switch strings.ToLower(filepath.Ext(inner)) {
	case ".csv":
		return ReadCSV(rc)
	case ".dipha", ".diagram", ".bin":
		return ReadDIPHA(rc)
	}

	return nil, fmt.Errorf("extension of %q: %w", inner, ErrUnknownFormat)
}

// Save writes pairs to path, creating or truncating it. On failure the
// partial file is removed.
func Save(path string, pairs []cubical.Pair) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, path, pairs); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("%s: %w", path, err)
	}

	return f.Close()
}

// Load reads the diagram stored at path.
func Load(path string) ([]cubical.Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	pairs, err := Decode(f, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return pairs, nil
}
