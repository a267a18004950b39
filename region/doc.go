// Package region manages the Anvil region file container: the 8 KiB
// header (1024 sector locations + 1024 timestamps), the sector allocation
// map, and the compressed per-chunk NBT payloads that follow it.
//
// A Manager is constructed from a single region file path and holds that
// file's header and loaded-chunk state in memory; it is not safe to share
// a Manager across goroutines operating on the same file concurrently —
// give each worker its own region file, as the source system does.
package region
