package cubical

import (
	"fmt"
	"strings"
)

// EssentialDim is the Pair.Dim of a class that never dies below threshold.
const EssentialDim = -1

// Pair is one persistence interval [Birth, Death) of a class of dimension
// Dim. Essential classes carry Dim == EssentialDim and Death == threshold.
type Pair struct {
	Dim   int
	Birth float64
	Death float64
}

// Essential reports whether p never dies.
func (p Pair) Essential() bool { return p.Dim == EssentialDim }

// Persistence returns Death − Birth.
func (p Pair) Persistence() float64 { return p.Death - p.Birth }

// String renders p as "dim [birth,death)".
func (p Pair) String() string {
	return fmt.Sprintf("%d [%g,%g)", p.Dim, p.Birth, p.Death)
}

// Method selects the reduction strategy.
type Method int

const (
	// LinkFind runs union-find for dimension 0, matrix reduction above.
	LinkFind Method = iota

	// ComputePairs runs matrix reduction for every dimension.
	ComputePairs
)

// String returns the canonical name of m.
func (m Method) String() string {
	switch m {
	case LinkFind:
		return "link_find"
	case ComputePairs:
		return "compute_pairs"
	}

	return fmt.Sprintf("method(%d)", int(m))
}

// ParseMethod accepts "link_find" / "linkfind" / "0" and
// "compute_pairs" / "computepairs" / "1", case-insensitively.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "link_find", "linkfind", "0":
		return LinkFind, nil
	case "compute_pairs", "computepairs", "1":
		return ComputePairs, nil
	}

	return 0, fmt.Errorf("%q: %w", s, ErrMethod)
}

// DimStats describes one dimension's reduction pass.
//
//   - Columns:   cells reduced as columns.
//   - Pivots:    (Dim+1)-cells paired with a column (apparent pairs included).
//   - Apparent:  columns settled by the apparent-pair shortcut.
//   - Essential: columns that reduced to zero.
//   - Emitted:   pairs appended to the output (zero persistence dropped).
//   - Cached:    working coboundaries retained for reuse.
//
// Every column ends either paired or essential: Columns == Pivots + Essential.
type DimStats struct {
	Dim       int
	Columns   int
	Pivots    int
	Apparent  int
	Essential int
	Emitted   int
	Cached    int
}

// Result is the output of ComputeWithStats.
type Result struct {
	Method Method
	Pairs  []Pair
	Stats  []DimStats
}
