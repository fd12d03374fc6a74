package diagram

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/cubicalripser/cubical"
	"github.com/katalvlaran/cubicalripser/gridio"
)

// record is the on-disk layout of one DIPHA pair.
type record struct {
	Dim   int64
	Birth float64
	Death float64
}

// WriteDIPHA writes pairs as a DIPHA persistence diagram.
func WriteDIPHA(w io.Writer, pairs []cubical.Pair) error {
	bw := bufio.NewWriter(w)
	hdr := [3]int64{gridio.DiphaMagic, gridio.DiphaDiagram, int64(len(pairs))}
	if err := binary.Write(bw, binary.LittleEndian, hdr); err != nil {
		return err
	}
	recs := make([]record, len(pairs))
	for i, p := range pairs {
		recs[i] = record{Dim: int64(p.Dim), Birth: p.Birth, Death: p.Death}
	}
	if err := binary.Write(bw, binary.LittleEndian, recs); err != nil {
		return err
	}

	return bw.Flush()
}

// ReadDIPHA parses a DIPHA persistence diagram.
func ReadDIPHA(r io.Reader) ([]cubical.Pair, error) {
	br := bufio.NewReader(r)
	typ, err := gridio.ReadDiphaHeader(br)
	if err != nil {
		return nil, err
	}
	if typ != gridio.DiphaDiagram {
		return nil, fmt.Errorf("DIPHA type %d is not a diagram: %w", typ, ErrFormat)
	}
	var n int64
	if err := binary.Read(br, binary.LittleEndian, &n); err != nil {
		return nil, short(err)
	}
	if n < 0 {
		return nil, fmt.Errorf("pair count %d: %w", n, ErrFormat)
	}

	pairs := make([]cubical.Pair, 0, min(n, 1<<16))
	for i := int64(0); i < n; i++ {
		var rec record
		if err := binary.Read(br, binary.LittleEndian, &rec); err != nil {
			return nil, short(err)
		}
		pairs = append(pairs, cubical.Pair{Dim: int(rec.Dim), Birth: rec.Birth, Death: rec.Death})
	}

	return pairs, nil
}

func short(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return gridio.ErrTruncated
	}

	return err
}
