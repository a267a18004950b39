package chunk

import (
	"sort"

	"github.com/anvilkit/anvil/blockstate"
	"github.com/anvilkit/anvil/errs"
	"github.com/anvilkit/anvil/nbt"
)

// passThroughKeys lists the chunk-level NBT fields this package treats as
// opaque: it never interprets them, only carries them through a decode or
// re-emits them verbatim on encode when the chunk is dirty.
var passThroughKeys = []string{
	"Biomes", "Heightmaps", "Entities", "TileEntities", "TileTicks",
	"LiquidTicks", "LiquidsToBeTicked", "ToBeTicked", "Lights",
	"PostProcessing", "CarvingMasks", "Status", "Structures",
}

// Chunk is a decoded 16x256x16 column of blocks.
type Chunk struct {
	DataVersion   int32
	XPos          int32
	ZPos          int32
	InhabitedTime int64
	LastUpdate    int64

	sections map[int8]*Section

	// passThrough holds the chunk-level NBT subtrees this package does not
	// interpret, keyed by field name, exactly as read from Level.
	passThrough map[string]nbt.Tag

	// dirty marks that the chunk must be re-serialized on save rather than
	// byte-copied from the source region file.
	dirty bool
}

// New creates an empty chunk at the given coordinates.
func New(xPos, zPos int32) *Chunk {
	return &Chunk{
		XPos:        xPos,
		ZPos:        zPos,
		sections:    make(map[int8]*Section),
		passThrough: make(map[string]nbt.Tag),
		dirty:       true,
	}
}

// Dirty reports whether the chunk must be re-encoded on the next save.
func (c *Chunk) Dirty() bool { return c.dirty }

// MarkDirty flags the chunk for re-encoding on the next save.
func (c *Chunk) MarkDirty() { c.dirty = true }

// ClearDirty resets the dirty flag, typically called by the region manager
// immediately after a successful re-encode.
func (c *Chunk) ClearDirty() { c.dirty = false }

// Section returns the section at vertical index y (in [-1, 16]), or nil if
// the chunk has no section at that height.
func (c *Chunk) Section(y int8) *Section {
	return c.sections[y]
}

// SetSection stores (or replaces) the section at its own Y index.
func (c *Chunk) SetSection(s *Section) {
	c.sections[s.Y] = s
}

// Sections returns the chunk's sections ordered by ascending Y.
func (c *Chunk) Sections() []*Section {
	out := make([]*Section, 0, len(c.sections))
	for _, s := range c.sections {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Y < out[j].Y })

	return out
}

// BlockAt returns the block-state handle at world-relative coordinates
// (x, y, z) where x, z are in [0, 16) and y spans the full chunk height. A
// y outside any loaded section's range reads as air.
func (c *Chunk) BlockAt(x, y, z int) blockstate.Handle {
	sy := int8(y >> 4)
	s := c.sections[sy]
	if s == nil {
		return AirHandle
	}

	return s.BlockAt(x, y&15, z)
}

// SetBlockAt stores handle at world-relative coordinates (x, y, z). It is
// a silent no-op if no section exists at that height or the section has
// no Blocks array; callers that need the write to succeed must ensure the
// section was created with a non-nil Blocks slice.
func (c *Chunk) SetBlockAt(x, y, z int, handle blockstate.Handle) error {
	if err := checkCoord(x, y&15, z); err != nil {
		return err
	}

	sy := int8(y >> 4)
	s := c.sections[sy]
	if s == nil {
		return nil
	}
	s.SetBlockAt(x, y&15, z, handle)
	c.dirty = true

	return nil
}

// RawPassThrough returns the unparsed NBT tag stored under key, and
// whether it was present. key is one of the chunk-level fields this
// package treats opaquely (see RawHeightmaps, RawBiomes).
func (c *Chunk) RawPassThrough(key string) (nbt.Tag, bool) {
	t, ok := c.passThrough[key]

	return t, ok
}

// SetRawPassThrough replaces the opaque NBT subtree stored under key and
// marks the chunk dirty.
func (c *Chunk) SetRawPassThrough(key string, tag nbt.Tag) {
	c.passThrough[key] = tag
	c.dirty = true
}

// RawHeightmaps returns the chunk's Heightmaps subtree unparsed. This core
// does not recompute or validate heightmaps; it only carries them through.
func (c *Chunk) RawHeightmaps() (nbt.Tag, bool) {
	return c.RawPassThrough("Heightmaps")
}

// RawBiomes returns the chunk's Biomes subtree unparsed.
func (c *Chunk) RawBiomes() (nbt.Tag, bool) {
	return c.RawPassThrough("Biomes")
}

func requireInt(c *nbt.Compound, key string) (int32, error) {
	t, ok := c.Get(key)
	if !ok {
		return 0, errs.ErrMalformedChunk
	}
	v, ok := t.(nbt.Int)
	if !ok {
		return 0, errs.ErrMalformedChunk
	}

	return int32(v), nil
}

func optionalLong(c *nbt.Compound, key string) int64 {
	t, ok := c.Get(key)
	if !ok {
		return 0
	}
	if v, ok := t.(nbt.Long); ok {
		return int64(v)
	}

	return 0
}
