package gridio

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

const (
	// DiphaMagic opens every DIPHA stream.
	DiphaMagic int64 = 8067171840

	// DiphaImage is the DIPHA type of a weighted cubical complex.
	DiphaImage int64 = 1

	// DiphaDiagram is the DIPHA type of a persistence diagram.
	DiphaDiagram int64 = 2

	// readChunk is the number of values decoded per binary.Read call.
	readChunk = 4096
)

// ReadDiphaHeader reads magic and type, checks the magic and returns the
// type.
func ReadDiphaHeader(r io.Reader) (int64, error) {
	var hdr [2]int64
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return 0, truncated(err)
	}
	if hdr[0] != DiphaMagic {
		return 0, fmt.Errorf("got %d: %w", hdr[0], ErrBadMagic)
	}

	return hdr[1], nil
}

// ReadDIPHA decodes a DIPHA image.
func ReadDIPHA(r io.Reader) (Image, error) {
	br := bufio.NewReader(r)
	typ, err := ReadDiphaHeader(br)
	if err != nil {
		return Image{}, err
	}
	if typ != DiphaImage {
		return Image{}, fmt.Errorf("type %d: %w", typ, ErrBadType)
	}

	var hdr [2]int64 // value count, dimension
	if err := binary.Read(br, binary.LittleEndian, &hdr); err != nil {
		return Image{}, truncated(err)
	}
	if err := checkDim(hdr[1]); err != nil {
		return Image{}, err
	}
	dim := int(hdr[1])
	ext := make([]int64, dim)
	if err := binary.Read(br, binary.LittleEndian, ext); err != nil {
		return Image{}, truncated(err)
	}

	im := Image{Extents: make([]int, dim)}
	total := int64(1)
	for i, a := range ext {
		if err := checkExtent(dim, i, a); err != nil {
			return Image{}, err
		}
		im.Extents[i] = int(a)
		total *= a
	}
	if hdr[0] != total {
		return Image{}, fmt.Errorf("header counts %d values, extents give %d: %w", hdr[0], total, ErrFormat)
	}

	// Grow with the data actually present so a short stream cannot reserve
	// the full header size.
	im.Values = make([]float64, 0, min(total, preallocLimit))
	var chunk [readChunk]float64
	for left := total; left > 0; {
		n := min(left, readChunk)
		if err := binary.Read(br, binary.LittleEndian, chunk[:n]); err != nil {
			return Image{}, truncated(err)
		}
		im.Values = append(im.Values, chunk[:n]...)
		left -= n
	}

	return im, nil
}

// WriteDIPHA encodes im as a DIPHA image.
func WriteDIPHA(w io.Writer, im Image) error {
	if err := im.validate(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	hdr := make([]int64, 0, 4+len(im.Extents))
	hdr = append(hdr, DiphaMagic, DiphaImage, int64(len(im.Values)), int64(len(im.Extents)))
	for _, a := range im.Extents {
		hdr = append(hdr, int64(a))
	}
	if err := binary.Write(bw, binary.LittleEndian, hdr); err != nil {
		return err
	}
	if err := binary.Write(bw, binary.LittleEndian, im.Values); err != nil {
		return err
	}

	return bw.Flush()
}

func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}

	return err
}
