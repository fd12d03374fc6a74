package diagram

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/cubicalripser/cubical"
)

var csvHeader = []string{"dim", "birth", "death"}

// WriteCSV writes pairs with a "dim,birth,death" header.
func WriteCSV(w io.Writer, pairs []cubical.Pair) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	rec := make([]string, 3)
	for _, p := range pairs {
		rec[0] = strconv.Itoa(p.Dim)
		rec[1] = strconv.FormatFloat(p.Birth, 'g', -1, 64)
		rec[2] = strconv.FormatFloat(p.Death, 'g', -1, 64)
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// ReadCSV parses the output of WriteCSV. The header row is optional.
func ReadCSV(r io.Reader) ([]cubical.Pair, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.ReuseRecord = true

	var pairs []cubical.Pair
	for line := 1; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return pairs, nil
		}
		if err != nil {
			return nil, fmt.Errorf("%v: %w", err, ErrFormat)
		}
		if line == 1 && rec[0] == csvHeader[0] {
			continue
		}

		var p cubical.Pair
		if p.Dim, err = strconv.Atoi(rec[0]); err != nil {
			return nil, fmt.Errorf("line %d dim %q: %w", line, rec[0], ErrFormat)
		}
		if p.Birth, err = strconv.ParseFloat(rec[1], 64); err != nil {
			return nil, fmt.Errorf("line %d birth %q: %w", line, rec[1], ErrFormat)
		}
		if p.Death, err = strconv.ParseFloat(rec[2], 64); err != nil {
			return nil, fmt.Errorf("line %d death %q: %w", line, rec[2], ErrFormat)
		}
		pairs = append(pairs, p)
	}
}
