// Package blockstate implements the process-wide block-state registry: an
// append-only interning table mapping (namespaced id, property map) pairs
// to stable handles, so every loaded chunk can reference a block state by
// a small integer instead of repeating its id and properties.
//
// The interning strategy is a hash-bucket table: a hash of the canonical
// key buckets entries, and an
// exact comparison within the bucket resolves any hash collision, so two
// distinct states that happen to hash alike are never merged into one
// handle.
package blockstate
