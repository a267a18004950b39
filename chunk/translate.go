package chunk

import (
	"github.com/anvilkit/anvil/blockstate"
	"github.com/anvilkit/anvil/errs"
	"github.com/anvilkit/anvil/format"
	"github.com/anvilkit/anvil/internal/pool"
	"github.com/anvilkit/anvil/nbt"
	"github.com/anvilkit/anvil/palette"
)

// Decode translates a chunk's root NBT Compound (as read from a region
// file) into a Chunk, interning every section's block states into
// registry. Fields this package does not interpret are retained verbatim
// for re-emission by Encode.
func Decode(root *nbt.Compound, registry *blockstate.Registry) (*Chunk, error) {
	dataVersion, err := requireInt(root, "DataVersion")
	if err != nil {
		return nil, err
	}

	levelTag, ok := root.Get("Level")
	if !ok {
		return nil, errs.ErrMalformedChunk
	}
	level, ok := levelTag.(*nbt.Compound)
	if !ok {
		return nil, errs.ErrMalformedChunk
	}

	xPos, err := requireInt(level, "xPos")
	if err != nil {
		return nil, err
	}
	zPos, err := requireInt(level, "zPos")
	if err != nil {
		return nil, err
	}

	sectionsTag, ok := level.Get("Sections")
	if !ok {
		return nil, errs.ErrMalformedChunk
	}
	sectionsList, ok := sectionsTag.(*nbt.List)
	if !ok {
		return nil, errs.ErrMalformedChunk
	}

	c := &Chunk{
		DataVersion:   dataVersion,
		XPos:          xPos,
		ZPos:          zPos,
		InhabitedTime: optionalLong(level, "InhabitedTime"),
		LastUpdate:    optionalLong(level, "LastUpdate"),
		sections:      make(map[int8]*Section),
		passThrough:   make(map[string]nbt.Tag),
	}

	for _, item := range sectionsList.Items {
		sc, ok := item.(*nbt.Compound)
		if !ok {
			return nil, errs.ErrMalformedChunk
		}
		section, err := decodeSection(sc, registry)
		if err != nil {
			return nil, err
		}
		c.sections[section.Y] = section
	}

	for _, key := range passThroughKeys {
		if t, ok := level.Get(key); ok {
			c.passThrough[key] = t
		}
	}

	return c, nil
}

func decodeSection(sc *nbt.Compound, registry *blockstate.Registry) (*Section, error) {
	yTag, ok := sc.Get("Y")
	if !ok {
		return nil, errs.ErrMalformedChunk
	}
	y, ok := yTag.(nbt.Byte)
	if !ok {
		return nil, errs.ErrMalformedChunk
	}

	section := &Section{Y: int8(y)}

	if t, ok := sc.Get("BlockLight"); ok {
		ba, ok := t.(nbt.ByteArray)
		if !ok {
			return nil, errs.ErrMalformedChunk
		}
		section.BlockLight = byteArrayToNibbles(ba)
	}

	if t, ok := sc.Get("SkyLight"); ok {
		ba, ok := t.(nbt.ByteArray)
		if !ok {
			return nil, errs.ErrMalformedChunk
		}
		section.SkyLight = byteArrayToNibbles(ba)
	}

	paletteTag, hasPalette := sc.Get("Palette")
	blockStatesTag, hasBlockStates := sc.Get("BlockStates")

	if !hasPalette || !hasBlockStates {
		// S6: BlockStates without Palette (or neither) decodes as an
		// airs-only section; reads answer air, writes are dropped.
		return section, nil
	}

	paletteList, ok := paletteTag.(*nbt.List)
	if !ok {
		return nil, errs.ErrMalformedChunk
	}
	longArray, ok := blockStatesTag.(nbt.LongArray)
	if !ok {
		return nil, errs.ErrMalformedChunk
	}

	handles := make([]blockstate.Handle, len(paletteList.Items))
	for i, item := range paletteList.Items {
		entry, ok := item.(*nbt.Compound)
		if !ok {
			return nil, errs.ErrMalformedChunk
		}
		id, props, err := decodePaletteEntry(entry)
		if err != nil {
			return nil, err
		}
		handles[i] = registry.Intern(id, props)
	}

	packed, packedCleanup := pool.GetUint64Slice(len(longArray))
	for i, v := range longArray {
		packed[i] = uint64(v)
	}
	indices, err := palette.Unpack(packed, len(handles))
	packedCleanup()
	if err != nil {
		return nil, err
	}

	blocks := make([]blockstate.Handle, SectionCells)
	for i, idx := range indices {
		if int(idx) >= len(handles) {
			return nil, errs.ErrMalformedChunk
		}
		blocks[i] = handles[idx]
	}
	section.Blocks = blocks

	return section, nil
}

func decodePaletteEntry(entry *nbt.Compound) (string, []blockstate.Property, error) {
	nameTag, ok := entry.Get("Name")
	if !ok {
		return "", nil, errs.ErrMalformedChunk
	}
	name, ok := nameTag.(nbt.String)
	if !ok {
		return "", nil, errs.ErrMalformedChunk
	}

	var props []blockstate.Property
	if propsTag, ok := entry.Get("Properties"); ok {
		propsCompound, ok := propsTag.(*nbt.Compound)
		if !ok {
			return "", nil, errs.ErrMalformedChunk
		}
		for _, key := range propsCompound.Keys() {
			v, _ := propsCompound.Get(key)
			s, ok := v.(nbt.String)
			if !ok {
				return "", nil, errs.ErrMalformedChunk
			}
			props = append(props, blockstate.Property{Key: key, Value: string(s)})
		}
	}

	return string(name), props, nil
}

// Encode translates c into a chunk root NBT Compound, rebuilding the
// palette and bit-packed blocks of every section that has a Blocks array
// and re-emitting pass-through subtrees verbatim.
func Encode(c *Chunk, registry *blockstate.Registry) (*nbt.Compound, error) {
	root := nbt.NewCompound()
	root.Set("DataVersion", nbt.Int(c.DataVersion))

	level := nbt.NewCompound()
	level.Set("xPos", nbt.Int(c.XPos))
	level.Set("zPos", nbt.Int(c.ZPos))
	level.Set("InhabitedTime", nbt.Long(c.InhabitedTime))
	level.Set("LastUpdate", nbt.Long(c.LastUpdate))

	sections := nbt.NewList(format.TagCompound)
	for _, s := range c.Sections() {
		sc, err := encodeSection(s, registry)
		if err != nil {
			return nil, err
		}
		sections.Append(sc)
	}
	level.Set("Sections", sections)

	for _, key := range passThroughKeys {
		if t, ok := c.passThrough[key]; ok {
			level.Set(key, t)
		}
	}

	root.Set("Level", level)

	return root, nil
}

func encodeSection(s *Section, registry *blockstate.Registry) (*nbt.Compound, error) {
	sc := nbt.NewCompound()
	sc.Set("Y", nbt.Byte(s.Y))

	if s.BlockLight != nil {
		sc.Set("BlockLight", nibblesToByteArray(s.BlockLight))
	}
	if s.SkyLight != nil {
		sc.Set("SkyLight", nibblesToByteArray(s.SkyLight))
	}

	if s.Blocks != nil {
		order := make([]blockstate.Handle, 0, 16)
		indexOf := make(map[blockstate.Handle]int)
		indices, cleanup := pool.GetUint16Slice(SectionCells)
		defer cleanup()
		for i, h := range s.Blocks {
			idx, ok := indexOf[h]
			if !ok {
				idx = len(order)
				order = append(order, h)
				indexOf[h] = idx
			}
			indices[i] = uint16(idx)
		}

		paletteList := nbt.NewList(format.TagCompound)
		for _, h := range order {
			entry, err := encodePaletteEntry(h, registry)
			if err != nil {
				return nil, err
			}
			paletteList.Append(entry)
		}
		sc.Set("Palette", paletteList)

		packed, err := palette.Pack(indices, len(order))
		if err != nil {
			return nil, err
		}
		sc.Set("BlockStates", uint64ToInt64(packed))
	}

	return sc, nil
}

func encodePaletteEntry(h blockstate.Handle, registry *blockstate.Registry) (*nbt.Compound, error) {
	state, err := registry.Lookup(h)
	if err != nil {
		return nil, err
	}

	entry := nbt.NewCompound()
	entry.Set("Name", nbt.String(state.ID))
	if len(state.Properties) > 0 {
		props := nbt.NewCompound()
		for _, p := range state.Properties {
			props.Set(p.Key, nbt.String(p.Value))
		}
		entry.Set("Properties", props)
	}

	return entry, nil
}

func byteArrayToNibbles(ba nbt.ByteArray) NibbleArray {
	out := make(NibbleArray, len(ba))
	for i, b := range ba {
		out[i] = byte(b)
	}

	return out
}

func nibblesToByteArray(n NibbleArray) nbt.ByteArray {
	out := make(nbt.ByteArray, len(n))
	for i, b := range n {
		out[i] = int8(b)
	}

	return out
}

func uint64ToInt64(in []uint64) nbt.LongArray {
	out := make(nbt.LongArray, len(in))
	for i, v := range in {
		out[i] = int64(v)
	}

	return out
}
