package gridio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// PerseusAbsent marks a voxel that never enters the filtration.
const PerseusAbsent = -1

// ReadPerseus decodes a Perseus cubical-toplex file. Values equal to -1 are
// replaced by threshold.
func ReadPerseus(r io.Reader, threshold float64) (Image, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)

	next := func(what string) (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", fmt.Errorf("%s: %w", what, ErrTruncated)
		}
		return sc.Text(), nil
	}
	nextInt := func(what string) (int, error) {
		tok, err := next(what)
		if err != nil {
			return 0, err
		}
		v, err := strconv.Atoi(tok)
		if err != nil {
			return 0, fmt.Errorf("%s %q: %w", what, tok, ErrFormat)
		}
		return v, nil
	}

	dim, err := nextInt("dimension")
	if err != nil {
		return Image{}, err
	}
	if err := checkDim(int64(dim)); err != nil {
		return Image{}, err
	}
	im := Image{Extents: make([]int, dim)}
	for i := range im.Extents {
		if im.Extents[i], err = nextInt("extent"); err != nil {
			return Image{}, err
		}
		if err := checkExtent(dim, i, int64(im.Extents[i])); err != nil {
			return Image{}, err
		}
	}

	n := im.Len()
	im.Values = make([]float64, 0, min(n, preallocLimit))
	for i := 0; i < n; i++ {
		tok, err := next("value")
		if err != nil {
			return Image{}, err
		}
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return Image{}, fmt.Errorf("value %d %q: %w", i, tok, ErrFormat)
		}
		if v == PerseusAbsent {
			v = threshold
		}
		im.Values = append(im.Values, v)
	}

	return im, nil
}

// WritePerseus encodes im in Perseus layout, one token per line. Values
// >= threshold are written as -1.
func WritePerseus(w io.Writer, im Image, threshold float64) error {
	if err := im.validate(); err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, len(im.Extents))
	for _, a := range im.Extents {
		fmt.Fprintln(bw, a)
	}
	for _, v := range im.Values {
		if v >= threshold {
			fmt.Fprintln(bw, PerseusAbsent)
			continue
		}
		bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
