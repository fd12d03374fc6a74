// Package cubical computes persistent homology of cubical complexes built
// from 2-, 3- and 4-dimensional voxel grids, with coefficients in GF(2).
//
// What:
//
//   - Grid holds the voxel values of a d-dimensional image, padded by one
//     "never born" cell on every side. Each cell of the cubical complex
//     (vertex, edge, square, cube, tesseract) is born at the maximum value
//     of its vertices (the "birthday").
//   - CellID packs a cell's anchor coordinates and orientation type into a
//     single uint32; Encoding converts between the two representations.
//   - CoboundaryEnumerator lazily produces the (k+1)-cells having a given
//     k-cell as a face, in strictly descending id order.
//   - Compute reduces the coboundary matrix dimension by dimension and
//     returns the persistence pairs (dim, birth, death).
//
// Strategies:
//
//   - LinkFind: dimension 0 via union-find and the elder rule, then matrix
//     reduction for dimensions 1..d-1.
//   - ComputePairs: matrix reduction for every dimension 0..d-1.
//
// Both produce the same multiset of pairs. Pairs with birth == death are
// never reported; pairs that never die are reported with Dim == EssentialDim
// (-1) and Death == threshold.
//
// Complexity:
//
//   - Grid construction: O(N) time and memory, N = Π(extent+2).
//   - Column enumeration per dimension k: O(N·C(d,k)·2^k).
//   - Reduction: worst case cubic in the number of columns, close to linear
//     on typical images thanks to apparent pairs, clearing and the column
//     cache.
//
// Errors:
//
//   - ErrDimension: dimensionality not in {2,3,4}.
//   - ErrExtent: an extent is < 1 or exceeds MaxExtent(d).
//   - ErrValueCount: value count does not match the extents.
//   - ErrThreshold: threshold is NaN.
//   - ErrMethod: unknown reduction strategy.
//   - ErrNilGrid: nil *Grid passed to Compute.
package cubical
