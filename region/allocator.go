package region

import "sort"

// allocator tracks occupied sector ranges as a sorted list, seeded with the
// reserved header range [0, HeaderSectors), so a loaded region's sector
// table can be checked for overlaps against a well-formed layout.
type allocator struct {
	occupied []Sector
}

func newAllocator() *allocator {
	return &allocator{occupied: []Sector{{Offset: 0, Count: HeaderSectors}}}
}

// insert records sector as occupied, keeping the list sorted by offset.
func (a *allocator) insert(s Sector) {
	i := sort.Search(len(a.occupied), func(i int) bool { return a.occupied[i].Offset > s.Offset })
	a.occupied = append(a.occupied, Sector{})
	copy(a.occupied[i+1:], a.occupied[i:])
	a.occupied[i] = s
}

// overlapping reports whether any two occupied ranges in the sorted list
// overlap, including against the reserved header range. A well-formed
// region file never has two chunks (or a chunk and the header) sharing a
// sector.
func (a *allocator) overlapping() bool {
	for i := 0; i+1 < len(a.occupied); i++ {
		if a.occupied[i].End() > a.occupied[i+1].Offset {
			return true
		}
	}

	return false
}
