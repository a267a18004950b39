package region

// SectorSize is the 4 KiB allocation unit a region file's chunk payloads
// and header are measured in.
const SectorSize = 4096

// HeaderSectors is the number of sectors the reserved location and
// timestamp tables occupy at the start of every region file.
const HeaderSectors = 2

// Sector is a (offset, count) pair measured in 4 KiB units. The zero value
// represents an empty slot: no chunk stored at that index.
type Sector struct {
	Offset uint32
	Count  uint8
}

// Empty reports whether s represents an absent chunk.
func (s Sector) Empty() bool {
	return s.Offset == 0 || s.Count == 0
}

// End returns the sector index one past the end of s's range.
func (s Sector) End() uint32 {
	return s.Offset + uint32(s.Count)
}

// ChunkIndex computes the region-local slot for chunk coordinates x, z,
// matching i = (x & 31) | ((z & 31) << 5).
func ChunkIndex(x, z int32) int {
	return int(x&31) | (int(z&31) << 5)
}
