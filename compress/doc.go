// Package compress implements the three chunk-compression schemes a
// region file's sector header can declare: GZip (type 1, legacy-only),
// Zlib (type 2, the vanilla default since Anvil's introduction), and
// uncompressed (type 3).
//
// The package defines three small interfaces — Compressor, Decompressor,
// and the Codec combining both — so the region manager can select an
// implementation purely from the compression type byte it reads from or
// writes to a sector header, without a type switch at every call site.
//
// GZip and Zlib are implemented on top of klauspost/compress, which
// parses and produces output compatible with the standard library's
// compress/gzip and compress/zlib but with a faster DEFLATE
// implementation.
package compress
