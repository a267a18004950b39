// Package nbt decodes and encodes the NBT ("Named Binary Tag") format: a
// big-endian, length-prefixed binary tree with twelve tag kinds.
//
// The package models the tag kinds as a closed set of concrete Go types
// implementing the Tag interface — a tagged union via dynamic dispatch on
// the concrete type, rather than a single struct with a discriminant field
// and per-kind optional payloads. Decode and Encode are the two entry
// points; everything else composes from them.
//
// A Compound preserves the order tags were inserted (or decoded) in, since
// write stability over that order is part of the format's round-trip
// contract.
package nbt
