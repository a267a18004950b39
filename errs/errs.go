// Package errs collects the sentinel errors returned across this module, so
// callers can branch on error identity with errors.Is instead of matching
// on message text, the way the teacher's section/flag parsers return a
// fixed ErrInvalidHeaderSize rather than an ad hoc fmt.Errorf.
package errs

import "errors"

// NBT codec errors (decode side).
var (
	ErrMalformedString = errors.New("nbt: malformed string")
	ErrMalformedLength = errors.New("nbt: malformed array or list length")
	ErrMalformedList   = errors.New("nbt: malformed list")
	ErrUnknownTag      = errors.New("nbt: unknown tag type")
	ErrUnexpectedEOF   = errors.New("nbt: unexpected end of stream")
)

// NBT codec errors (encode side).
var (
	ErrStringTooLong     = errors.New("nbt: string exceeds 65535 UTF-8 bytes")
	ErrArrayTooLong      = errors.New("nbt: array exceeds maximum i32 length")
	ErrHeterogeneousList = errors.New("nbt: list element does not match declared tag type")
)

// Region file errors.
var (
	ErrFileNotFound       = errors.New("region: file not found")
	ErrMalformedRegion    = errors.New("region: malformed region file")
	ErrUnknownCompression = errors.New("region: unknown compression type")
	ErrCompressionFailure = errors.New("region: compression or decompression failed")
)

// Chunk translation errors.
var (
	ErrMalformedChunk = errors.New("chunk: required field missing or wrong type")
	ErrOutOfRange     = errors.New("chunk: index or coordinate out of range")
)

// Block-state registry errors.
var (
	ErrInvalidHandle = errors.New("blockstate: handle not present in registry")
)

// Palette engine errors.
var (
	ErrInvalidPaletteSize = errors.New("palette: palette size out of range")
)

// World archive errors.
var (
	ErrUnknownArchiveMode = errors.New("archive: unknown pack mode")
	ErrPathEscapesRoot    = errors.New("archive: entry path escapes extraction root")
)
