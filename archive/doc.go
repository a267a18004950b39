// Package archive packs a world directory (its region files and any
// sibling metadata) into a single stream for transfer or cold storage, and
// unpacks it again.
//
// This sits outside the core Anvil wire format: a region file's chunk
// payloads only ever declare gzip, zlib, or uncompressed (format package),
// so neither LZ4 nor Zstandard has a slot inside a .mca file itself. This
// package instead wraps the tar stream of an entire world directory, and
// offers two modes trading speed for ratio:
//
//   - Fast: pierrec/lz4, favoring pack/unpack speed over size, for
//     frequent snapshots of an active world.
//   - Archival: valyala/gozstd (cgo bindings to libzstd), favoring size
//     over speed, for long-term cold storage.
package archive
