// Package anvil provides a high-level, idiomatic entry point for reading
// and writing Minecraft Anvil region files (.mca): the sector-addressed
// container format, its NBT-encoded chunk payloads, and the block-state
// registry used to address individual blocks cheaply.
//
// # Core Features
//
//   - Region file manager with sector-level read/write and atomic save
//   - NBT codec covering all twelve tag types plus the Compound terminator
//   - Chunk <-> NBT translation, including legacy bit-packed block states
//   - A process-wide block-state registry interning (id, properties) pairs
//   - World-directory archiving in LZ4 (fast) and Zstandard (archival) modes
//
// # Basic Usage
//
// Opening a region file and reading a chunk:
//
//	mgr, err := anvil.OpenRegion("r.0.0.mca")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer mgr.Close()
//
//	c, ok, err := mgr.ReadChunk(3, 7)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if ok {
//	    handle := c.BlockAt(1, 64, 1)
//	    state, _ := anvil.DefaultRegistry().Lookup(handle)
//	    fmt.Println(state.ID)
//	}
//
// Writing a chunk back and saving:
//
//	c.SetBlockAt(1, 64, 1, anvil.Intern("minecraft:stone"))
//	mgr.WriteChunk(c)
//	if err := mgr.Save(); err != nil {
//	    log.Fatal(err)
//	}
//
// # Package Structure
//
// This package is a thin convenience layer over region, chunk, and
// blockstate. For fine-grained control — custom registries, raw NBT access,
// direct palette manipulation — use those packages directly.
package anvil

import (
	"io"

	"github.com/anvilkit/anvil/archive"
	"github.com/anvilkit/anvil/blockstate"
	"github.com/anvilkit/anvil/chunk"
	"github.com/anvilkit/anvil/region"
)

// OpenRegion opens a region file using the default, process-wide block-state
// registry. Most callers that work with a single registry should use this.
func OpenRegion(path string) (*region.Manager, error) {
	return region.Open(path)
}

// OpenRegionWithRegistry opens a region file against a caller-supplied
// registry, useful for tests or for isolating block-state identities between
// independently processed worlds.
func OpenRegionWithRegistry(path string, registry *blockstate.Registry) (*region.Manager, error) {
	return region.OpenWithRegistry(path, registry)
}

// NewChunk creates an empty chunk at the given chunk coordinates, with no
// sections and no block data. Use Chunk.SetSection to add sections before
// writing it to a Manager; Chunk.SetBlockAt only writes into sections that
// already exist.
func NewChunk(xPos, zPos int32) *chunk.Chunk {
	return chunk.New(xPos, zPos)
}

// DefaultRegistry returns the process-wide block-state registry shared by
// OpenRegion and all decoded chunks that don't specify their own.
func DefaultRegistry() *blockstate.Registry {
	return blockstate.Default()
}

// Intern interns a block state in the default registry and returns its
// handle. A bare id ("stone") is normalized to "minecraft:stone".
func Intern(id string, properties ...blockstate.Property) blockstate.Handle {
	return blockstate.Default().Intern(id, properties)
}

// PackWorld archives worldDir into w using the given mode (archive.ModeFast
// or archive.ModeArchival).
func PackWorld(w io.Writer, worldDir string, mode archive.Mode) error {
	return archive.Pack(w, worldDir, mode)
}

// UnpackWorld extracts an archive produced by PackWorld into destDir.
func UnpackWorld(r io.Reader, destDir string, mode archive.Mode) error {
	return archive.Unpack(r, destDir, mode)
}
