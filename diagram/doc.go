// Package diagram stores, loads and summarizes persistence diagrams.
//
// Encodings:
//
//   - CSV: header "dim,birth,death", one pair per row.
//   - DIPHA: int64 magic 8067171840, int64 type 2, int64 pair count, then
//     per pair int64 dim, float64 birth, float64 death (little endian).
//
// Files may carry a ".zst" or ".lz4" suffix for compression.
package diagram
