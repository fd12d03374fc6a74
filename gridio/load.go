package gridio

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/cubicalripser/cubical"
	"github.com/katalvlaran/cubicalripser/internal/stream"
)

// Format selects an image encoding.
type Format int

const (
	// FormatAuto picks the format from the file extension.
	FormatAuto Format = iota
	// FormatDIPHA is the binary DIPHA image format.
	FormatDIPHA
	// FormatPerseus is the Perseus text format.
	FormatPerseus
)

// String returns the canonical name of f.
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatDIPHA:
		return "dipha"
	case FormatPerseus:
		return "perseus"
	}

	return fmt.Sprintf("format(%d)", int(f))
}

// ParseFormat accepts "auto", "dipha" and "perseus", case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "dipha":
		return FormatDIPHA, nil
	case "perseus":
		return FormatPerseus, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// FormatOf maps a file name (compression suffix already stripped) to a
// format: ".complex", ".dipha" and ".bin" are DIPHA, ".txt" and ".perseus"
// are Perseus.
func FormatOf(name string) (Format, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".complex", ".dipha", ".bin":
		return FormatDIPHA, nil
	case ".txt", ".perseus":
		return FormatPerseus, nil
	}

	return 0, fmt.Errorf("extension of %q: %w", name, ErrUnknownFormat)
}

func resolve(f Format, inner string) (Format, error) {
	switch f {
	case FormatAuto:
		return FormatOf(inner)
	case FormatDIPHA, FormatPerseus:
		return f, nil
	}

	return 0, fmt.Errorf("%v: %w", f, ErrUnknownFormat)
}

// Decode reads an image from r. name drives decompression and, with
// FormatAuto, format detection.
func Decode(r io.Reader, name string, f Format, threshold float64) (Image, error) {
	rc, inner, err := stream.NewReader(r, name)
	if err != nil {
		return Image{}, err
	}
	defer rc.Close()

	if f, err = resolve(f, inner); err != nil {
		return Image{}, err
	}
	if f == FormatDIPHA {
		return ReadDIPHA(rc)
	}

	return ReadPerseus(rc, threshold)
}

// Encode writes im to w. name drives compression and, with FormatAuto,
// format detection.
func Encode(w io.Writer, name string, f Format, im Image, threshold float64) error {
	wc, inner, err := stream.NewWriter(w, name)
	if err != nil {
		return err
	}
	if f, err = resolve(f, inner); err != nil {
		wc.Close()
		return err
	}
	if f == FormatDIPHA {
		err = WriteDIPHA(wc, im)
	} else {
		err = WritePerseus(wc, im, threshold)
	}
	if cerr := wc.Close(); err == nil {
		err = cerr
	}

	return err
}

// Open reads the image stored at path.
func Open(path string, f Format, threshold float64) (Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return Image{}, err
	}
	defer file.Close()

	im, err := Decode(file, path, f, threshold)
	if err != nil {
		return Image{}, fmt.Errorf("%s: %w", path, err)
	}

	return im, nil
}

// Save writes im to path, creating or truncating it. On failure the partial
// file is removed.
func Save(path string, f Format, im Image, threshold float64) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(file, path, f, im, threshold); err != nil {
		file.Close()
		os.Remove(path)
		return fmt.Errorf("%s: %w", path, err)
	}

	return file.Close()
}

// Load reads the image at path and builds a cubical.Grid from it.
func Load(path string, f Format, threshold float64) (*cubical.Grid, error) {
	im, err := Open(path, f, threshold)
	if err != nil {
		return nil, err
	}

	return im.Grid(threshold)
}

// Grid builds a cubical.Grid from im.
func (im Image) Grid(threshold float64) (*cubical.Grid, error) {
	return cubical.NewGrid(im.Extents, im.Values, threshold)
}

// FromGrid returns the normalized interior of g as an Image.
func FromGrid(g *cubical.Grid) Image {
	return Image{Extents: g.Extents(), Values: g.Values()}
}
