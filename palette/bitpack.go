package palette

import (
	"math/bits"

	"github.com/anvilkit/anvil/errs"
)

// CellCount is the number of indices packed per chunk section (16×16×16).
const CellCount = 4096

// BitsPerEntry returns the number of bits used to store one palette index
// for a palette of the given size.
//
// bitsize = max(ceil(log2(paletteSize)), 4); a palette never uses fewer than
// 4 bits per entry even when it could fit in less, matching the legacy
// on-disk format.
func BitsPerEntry(paletteSize int) int {
	if paletteSize <= 1 {
		return 4
	}

	b := bits.Len(uint(paletteSize - 1))
	if b < 4 {
		return 4
	}

	return b
}

// ValuesPerLong returns how many fixed-width values fit in one 64-bit long
// without crossing its boundary.
func ValuesPerLong(bitsPerEntry int) int {
	return 64 / bitsPerEntry
}

// PackedLength returns the number of longs needed to hold CellCount values
// at the given bit width.
func PackedLength(bitsPerEntry int) int {
	perLong := ValuesPerLong(bitsPerEntry)

	return (CellCount + perLong - 1) / perLong
}

// Pack bit-packs indices (each in [0, paletteSize)) into an array of
// 64-bit longs using the legacy non-boundary-crossing layout.
//
// Parameters:
//   - indices: exactly CellCount values, each less than paletteSize
//   - paletteSize: the palette's size, P ≥ 1
//
// Returns an error if paletteSize is invalid, indices is the wrong length,
// or a value is out of range for the palette.
func Pack(indices []uint16, paletteSize int) ([]uint64, error) {
	if paletteSize < 1 {
		return nil, errs.ErrInvalidPaletteSize
	}
	if len(indices) != CellCount {
		return nil, errs.ErrOutOfRange
	}

	bitsPerEntry := BitsPerEntry(paletteSize)
	perLong := ValuesPerLong(bitsPerEntry)
	packed := make([]uint64, PackedLength(bitsPerEntry))
	mask := uint64(1)<<uint(bitsPerEntry) - 1

	for i, v := range indices {
		if int(v) >= paletteSize {
			return nil, errs.ErrOutOfRange
		}

		longIndex := i / perLong
		bitOffset := uint((i % perLong) * bitsPerEntry)
		packed[longIndex] |= (uint64(v) & mask) << bitOffset
	}

	return packed, nil
}

// Unpack extracts CellCount indices from a legacy-packed long array.
//
// Parameters:
//   - packed: the packed long array, as produced by Pack or read from disk
//   - paletteSize: the palette's size, P ≥ 1
func Unpack(packed []uint64, paletteSize int) ([]uint16, error) {
	if paletteSize < 1 {
		return nil, errs.ErrInvalidPaletteSize
	}

	bitsPerEntry := BitsPerEntry(paletteSize)
	perLong := ValuesPerLong(bitsPerEntry)
	if len(packed) < PackedLength(bitsPerEntry) {
		return nil, errs.ErrOutOfRange
	}

	mask := uint64(1)<<uint(bitsPerEntry) - 1
	indices := make([]uint16, CellCount)

	for i := range indices {
		longIndex := i / perLong
		bitOffset := uint((i % perLong) * bitsPerEntry)
		indices[i] = uint16((packed[longIndex] >> bitOffset) & mask)
	}

	return indices, nil
}

// Get extracts the value at cell index i from a packed long array at the
// given bit width, without requiring a full Unpack.
func Get(packed []uint64, bitsPerEntry, i int) uint16 {
	perLong := ValuesPerLong(bitsPerEntry)
	longIndex := i / perLong
	bitOffset := uint((i % perLong) * bitsPerEntry)
	mask := uint64(1)<<uint(bitsPerEntry) - 1

	return uint16((packed[longIndex] >> bitOffset) & mask)
}

// Set injects value at cell index i into a packed long array at the given
// bit width, clearing the prior bits first. The caller must ensure packed
// is long enough (see PackedLength) and value < 1<<bitsPerEntry.
func Set(packed []uint64, bitsPerEntry, i int, value uint16) {
	perLong := ValuesPerLong(bitsPerEntry)
	longIndex := i / perLong
	bitOffset := uint((i % perLong) * bitsPerEntry)
	mask := uint64(1)<<uint(bitsPerEntry) - 1

	packed[longIndex] = (packed[longIndex] &^ (mask << bitOffset)) | ((uint64(value) & mask) << bitOffset)
}
