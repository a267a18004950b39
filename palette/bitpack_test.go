package palette_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anvilkit/anvil/palette"
)

func TestBitsPerEntry(t *testing.T) {
	cases := []struct {
		paletteSize int
		want        int
	}{
		{1, 4},
		{2, 4},
		{16, 4},
		{17, 5},
		{255, 8},
		{256, 8},
		{257, 9},
		{4096, 12},
	}

	for _, c := range cases {
		require.Equal(t, c.want, palette.BitsPerEntry(c.paletteSize), "paletteSize=%d", c.paletteSize)
	}
}

// S2: unpack a 256-long array of all-zeros with P=1 (bitsize=4) yields a
// 4096-array of zeros; inject value 7 at index 2047 then extract yields 7.
func TestScenarioS2(t *testing.T) {
	packed := make([]uint64, palette.PackedLength(palette.BitsPerEntry(1)))
	require.Len(t, packed, 256)

	indices, err := palette.Unpack(packed, 1)
	require.NoError(t, err)
	for _, v := range indices {
		require.Equal(t, uint16(0), v)
	}

	palette.Set(packed, palette.BitsPerEntry(1), 2047, 7)
	require.Equal(t, uint16(7), palette.Get(packed, palette.BitsPerEntry(1), 2047))
}

func TestPackUnpackRoundTrip(t *testing.T) {
	for paletteSize := 1; paletteSize <= 300; paletteSize++ {
		indices := make([]uint16, palette.CellCount)
		for i := range indices {
			indices[i] = uint16((i * 7) % paletteSize)
		}

		packed, err := palette.Pack(indices, paletteSize)
		require.NoError(t, err)

		got, err := palette.Unpack(packed, paletteSize)
		require.NoError(t, err)
		require.Equal(t, indices, got)
	}
}

func TestPackRejectsOutOfRangeValue(t *testing.T) {
	indices := make([]uint16, palette.CellCount)
	indices[10] = 5
	_, err := palette.Pack(indices, 5)
	require.Error(t, err)
}

func TestPackedValuesDoNotCrossLongBoundary(t *testing.T) {
	// bitsize=5 -> 12 values per long (60 bits used, 4 unused high bits).
	paletteSize := 17
	bitsPerEntry := palette.BitsPerEntry(paletteSize)
	require.Equal(t, 5, bitsPerEntry)
	require.Equal(t, 12, palette.ValuesPerLong(bitsPerEntry))

	indices := make([]uint16, palette.CellCount)
	for i := range indices {
		indices[i] = uint16(i % paletteSize)
	}

	packed, err := palette.Pack(indices, paletteSize)
	require.NoError(t, err)

	// the unused top 4 bits of every long must be zero.
	for _, long := range packed {
		require.Equal(t, uint64(0), long>>60)
	}
}
