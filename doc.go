// Package cubicalripser computes persistent homology of voxel images: the
// birth and death of connected components, loops and voids as a sublevel
// threshold sweeps through the values of a 2-, 3- or 4-dimensional grid.
//
// 🚀 What is cubicalripser?
//
//	A pure-Go cubical persistence engine that brings together:
//		• Cubical complexes: padded grids, packed 32-bit cell ids
//		• Dimension 0: elder-rule union-find (link_find)
//		• Higher dimensions: coboundary reduction over GF(2) with apparent
//		  pairs, clearing and cached working columns
//		• File formats: DIPHA and Perseus images, CSV and DIPHA diagrams,
//		  transparent zstd / lz4 streams
//
// ✨ Why choose cubicalripser?
//
//   - Small API – NewGrid, Compute, done
//   - Deterministic – same grid, same pairs, same order
//   - Observable – structured slog records per dimension
//   - Verified – both strategies cross-checked on random grids
//
// Under the hood, everything is organized under these subpackages:
//
//	cubical/            Grid, CellID encoding, coboundaries, union-find, reduction
//	gridio/             DIPHA / Perseus image readers and writers
//	diagram/            diagram encodings, summaries, comparisons
//	internal/stream/    compression by file suffix
//	cmd/cubicalripser/  command-line front end
//
// Quick ASCII example (3×3 image, center born at 5):
//
//	0 0 0
//	0 5 0     →   -1 [0,99999)   one component, never dies
//	0 0 0          1 [0,5)       one loop, filled at 5
//
//	go install github.com/katalvlaran/cubicalripser/cmd/cubicalripser@latest
package cubicalripser
