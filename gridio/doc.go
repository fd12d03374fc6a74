// Package gridio reads and writes voxel images for cubical persistence.
//
// Two formats are supported:
//
//   - DIPHA (binary, little endian): int64 magic 8067171840, int64 type 1,
//     int64 value count, int64 dimension, one int64 extent per axis, then
//     float64 values with axis 0 varying fastest.
//   - Perseus (text, whitespace separated): dimension, one extent per axis,
//     then the values in the same order. A value of -1 means "never born"
//     and maps to the threshold.
//
// Any file name may carry a ".zst" or ".lz4" suffix; the stream is then
// decompressed on read and compressed on write.
package gridio
