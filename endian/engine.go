// Package endian provides byte order utilities for binary encoding and
// decoding.
//
// It extends Go's standard encoding/binary package by combining ByteOrder
// and AppendByteOrder into a single EndianEngine interface, the way a
// generic binary-format codec keeps one byte-order abstraction instead of
// hardcoding binary.BigEndian at every call site.
//
// # Basic usage
//
//	import "github.com/anvilkit/anvil/endian"
//
//	engine := endian.Engine()
//	n := engine.Uint32(b)
//
// Every multi-byte field in NBT, the Anvil region header, and the
// bit-packed block-state longs is big-endian on the wire (see §6 of the
// format), so Engine always returns binary.BigEndian. The NBT reader and
// writer go through the EndianEngine interface rather than naming
// binary.BigEndian directly; the region manager reads and writes its header
// and chunk length fields with binary.BigEndian itself.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary
// into a single interface for convenient byte order operations.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// Engine returns the byte-order engine used throughout this module.
//
// The Anvil and NBT formats are big-endian everywhere; this function is the
// single seam through which that choice flows.
func Engine() EndianEngine {
	return binary.BigEndian
}
