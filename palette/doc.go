// Package palette bit-packs and unpacks the flat 4096-entry block-index
// array a chunk section stores its Palette indices in, against an array of
// 64-bit longs.
//
// This targets the legacy (pre-1.16) layout: a packed value never spans a
// long boundary, so any unused high bits of the last value in a long are
// left zero. It is the same fixed-width bit-packing idea the NumericGorilla
// codec in this module's ancestor used for variable-width float deltas,
// specialized to a single width per section instead of a width chosen
// per-value.
package palette
