package chunk_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anvilkit/anvil/blockstate"
	"github.com/anvilkit/anvil/chunk"
	"github.com/anvilkit/anvil/nbt"
)

func newChunkNBT(xPos, zPos int32) *nbt.Compound {
	root := nbt.NewCompound()
	root.Set("DataVersion", nbt.Int(3465))

	level := nbt.NewCompound()
	level.Set("xPos", nbt.Int(xPos))
	level.Set("zPos", nbt.Int(zPos))
	level.Set("InhabitedTime", nbt.Long(100))
	level.Set("LastUpdate", nbt.Long(200))
	level.Set("Sections", nbt.NewList(10))

	root.Set("Level", level)

	return root
}

func TestDecodeMissingDataVersionFails(t *testing.T) {
	root := nbt.NewCompound()
	_, err := chunk.Decode(root, blockstate.NewRegistry())
	require.Error(t, err)
}

func TestDecodeEncodeRoundTripEmptySections(t *testing.T) {
	registry := blockstate.NewRegistry()
	root := newChunkNBT(1, 2)

	c, err := chunk.Decode(root, registry)
	require.NoError(t, err)
	require.Equal(t, int32(1), c.XPos)
	require.Equal(t, int32(2), c.ZPos)
	require.Equal(t, int64(100), c.InhabitedTime)
	require.Equal(t, int64(200), c.LastUpdate)
	require.Empty(t, c.Sections())

	out, err := chunk.Encode(c, registry)
	require.NoError(t, err)

	decoded, err := chunk.Decode(out, registry)
	require.NoError(t, err)
	require.Equal(t, c.XPos, decoded.XPos)
	require.Equal(t, c.ZPos, decoded.ZPos)
}

func TestSectionWithBlockStatesButNoPaletteDecodesAsAir(t *testing.T) {
	registry := blockstate.NewRegistry()

	sc := nbt.NewCompound()
	sc.Set("Y", nbt.Byte(0))
	sc.Set("BlockStates", make(nbt.LongArray, 256))

	root := newChunkNBT(0, 0)
	level, _ := root.Get("Level")
	sections := nbt.NewList(10)
	sections.Append(sc)
	level.(*nbt.Compound).Set("Sections", sections)

	c, err := chunk.Decode(root, registry)
	require.NoError(t, err)

	section := c.Section(0)
	require.NotNil(t, section)
	require.Nil(t, section.Blocks)
	require.Equal(t, blockstate.Default().Intern("minecraft:air", nil), c.BlockAt(0, 0, 0))
}

func TestBlockAtSetBlockAtRoundTrip(t *testing.T) {
	registry := blockstate.NewRegistry()

	stone := registry.Intern("minecraft:stone", nil)
	air := registry.Intern("minecraft:air", nil)

	blocks := make([]blockstate.Handle, chunk.SectionCells)
	for i := range blocks {
		blocks[i] = stone
	}
	blocks[0] = air

	s := &chunk.Section{Y: 0, Blocks: blocks}
	c := chunk.New(0, 0)
	c.SetSection(s)

	require.Equal(t, air, c.BlockAt(0, 0, 0))
	require.Equal(t, stone, c.BlockAt(1, 0, 0))

	err := c.SetBlockAt(0, 0, 0, stone)
	require.NoError(t, err)
	require.Equal(t, stone, c.BlockAt(0, 0, 0))
	require.True(t, c.Dirty())
}

func TestEncodeDecodeSectionWithBlocksRebuildsPalette(t *testing.T) {
	registry := blockstate.NewRegistry()

	stone := registry.Intern("minecraft:stone", nil)
	air := registry.Intern("minecraft:air", nil)

	blocks := make([]blockstate.Handle, chunk.SectionCells)
	for i := range blocks {
		blocks[i] = stone
	}
	blocks[0] = air

	s := &chunk.Section{Y: 0, Blocks: blocks}
	c := chunk.New(5, 6)
	c.SetSection(s)

	root, err := chunk.Encode(c, registry)
	require.NoError(t, err)

	decoded, err := chunk.Decode(root, registry)
	require.NoError(t, err)

	ds := decoded.Section(0)
	require.NotNil(t, ds)
	require.Equal(t, air, ds.BlockAt(0, 0, 0))
	require.Equal(t, stone, ds.BlockAt(1, 0, 0))
}

func TestEncodeDecodeSingleBlockStatePalette(t *testing.T) {
	// S4: after collapsing to a single block state, bitsize is 4 and the
	// packed array is all zeros.
	registry := blockstate.NewRegistry()
	stone := registry.Intern("minecraft:stone", nil)

	blocks := make([]blockstate.Handle, chunk.SectionCells)
	for i := range blocks {
		blocks[i] = stone
	}

	s := &chunk.Section{Y: 0, Blocks: blocks}
	c := chunk.New(0, 0)
	c.SetSection(s)

	root, err := chunk.Encode(c, registry)
	require.NoError(t, err)

	level, _ := root.Get("Level")
	sections := level.(*nbt.Compound)
	sectionsList, _ := sections.Get("Sections")
	scList := sectionsList.(*nbt.List)
	require.Len(t, scList.Items, 1)

	sc := scList.Items[0].(*nbt.Compound)
	paletteTag, _ := sc.Get("Palette")
	paletteList := paletteTag.(*nbt.List)
	require.Len(t, paletteList.Items, 1)

	blockStatesTag, _ := sc.Get("BlockStates")
	longArray := blockStatesTag.(nbt.LongArray)
	for _, v := range longArray {
		require.Equal(t, int64(0), v)
	}
}

func TestNibbleArrayGetSet(t *testing.T) {
	n := chunk.NewNibbleArray()
	n.Set(0, 7)
	n.Set(1, 15)
	n.Set(2047, 3)

	require.Equal(t, uint8(7), n.Get(0))
	require.Equal(t, uint8(15), n.Get(1))
	require.Equal(t, uint8(3), n.Get(2047))
}

func TestRawHeightmapsPassThrough(t *testing.T) {
	registry := blockstate.NewRegistry()
	root := newChunkNBT(0, 0)
	level, _ := root.Get("Level")
	level.(*nbt.Compound).Set("Heightmaps", nbt.NewCompound())

	c, err := chunk.Decode(root, registry)
	require.NoError(t, err)

	_, ok := c.RawHeightmaps()
	require.True(t, ok)

	out, err := chunk.Encode(c, registry)
	require.NoError(t, err)
	outLevel, _ := out.Get("Level")
	_, ok = outLevel.(*nbt.Compound).Get("Heightmaps")
	require.True(t, ok)
}
