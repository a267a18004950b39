// Package chunk translates between a chunk's NBT Compound and an
// addressable in-memory representation: a coordinate, a per-section block
// grid backed by the blockstate registry, and a set of opaque pass-through
// NBT subtrees for fields this package does not interpret (entities, tile
// entities, heightmaps, and the like).
//
// Game-logic fields are round-tripped verbatim rather than modeled, so a
// clean (non-dirty) chunk re-serializes byte-for-byte; only dirty chunks
// pay the cost of rebuilding their section palettes.
package chunk
