package region

import (
	"encoding/binary"
	"io"
	"os"
	"time"

	"github.com/anvilkit/anvil/blockstate"
	"github.com/anvilkit/anvil/chunk"
	"github.com/anvilkit/anvil/compress"
	"github.com/anvilkit/anvil/errs"
	"github.com/anvilkit/anvil/format"
	"github.com/anvilkit/anvil/internal/pool"
	"github.com/anvilkit/anvil/nbt"
)

// Manager owns one region file's on-disk header, sector allocation, and
// the set of chunks currently loaded into memory.
type Manager struct {
	path string
	file *os.File

	locations  [1024]Sector
	timestamps [1024]uint32

	loaded map[int]*chunk.Chunk
	dirty  map[int]bool

	alloc    *allocator
	registry *blockstate.Registry
}

// Open loads the header of the region file at path. The file must already
// exist as a regular file and satisfy the region size invariants, or Open
// fails with errs.ErrFileNotFound / errs.ErrMalformedRegion.
func Open(path string) (*Manager, error) {
	return OpenWithRegistry(path, blockstate.Default())
}

// OpenWithRegistry is Open, but chunk block states are interned into (and
// looked up from) registry instead of the process-wide default.
func OpenWithRegistry(path string, registry *blockstate.Registry) (*Manager, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.ErrFileNotFound
		}

		return nil, err
	}
	if !info.Mode().IsRegular() {
		return nil, errs.ErrFileNotFound
	}
	if info.Size() < HeaderSectors*SectorSize || info.Size()%SectorSize != 0 {
		return nil, errs.ErrMalformedRegion
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}

	m := &Manager{
		path:     path,
		file:     f,
		loaded:   make(map[int]*chunk.Chunk),
		dirty:    make(map[int]bool),
		alloc:    newAllocator(),
		registry: registry,
	}

	if err := m.readHeader(); err != nil {
		f.Close()

		return nil, err
	}

	return m, nil
}

func (m *Manager) readHeader() error {
	header := make([]byte, HeaderSectors*SectorSize)
	if _, err := m.file.ReadAt(header, 0); err != nil {
		return err
	}

	m.alloc = newAllocator()
	for i := 0; i < 1024; i++ {
		entry := header[i*4 : i*4+4]
		offset := uint32(entry[0])<<16 | uint32(entry[1])<<8 | uint32(entry[2])
		count := entry[3]

		if offset != 0 && offset < HeaderSectors {
			return errs.ErrMalformedRegion
		}

		s := Sector{Offset: offset, Count: count}
		m.locations[i] = s
		if !s.Empty() {
			m.alloc.insert(s)
		}
	}

	for i := 0; i < 1024; i++ {
		off := 4096 + i*4
		m.timestamps[i] = binary.BigEndian.Uint32(header[off : off+4])
	}

	if m.alloc.overlapping() {
		return errs.ErrMalformedRegion
	}

	return nil
}

// Close releases the underlying file handle.
func (m *Manager) Close() error {
	return m.file.Close()
}

// HasChunk reports whether a sector is allocated for chunk (x, z).
func (m *Manager) HasChunk(x, z int32) bool {
	return !m.locations[ChunkIndex(x, z)].Empty()
}

// ReadChunkRaw returns the decompressed chunk NBT bytes for (x, z), and
// whether a chunk was present at all.
func (m *Manager) ReadChunkRaw(x, z int32) ([]byte, bool, error) {
	idx := ChunkIndex(x, z)
	sector := m.locations[idx]
	if sector.Empty() {
		return nil, false, nil
	}

	header := make([]byte, 5)
	if _, err := m.file.ReadAt(header, int64(sector.Offset)*SectorSize); err != nil {
		return nil, false, err
	}

	dataLength := binary.BigEndian.Uint32(header[0:4])
	if dataLength == 0 {
		return nil, false, errs.ErrMalformedRegion
	}
	compressionType := format.CompressionType(header[4])
	if !compressionType.Valid() {
		return nil, false, errs.ErrUnknownCompression
	}

	payload := make([]byte, dataLength-1)
	if _, err := m.file.ReadAt(payload, int64(sector.Offset)*SectorSize+5); err != nil {
		return nil, false, err
	}

	codec, err := compress.GetCodec(compressionType)
	if err != nil {
		return nil, false, errs.ErrUnknownCompression
	}

	decompressed, err := codec.Decompress(payload)
	if err != nil {
		return nil, false, errs.ErrCompressionFailure
	}

	return decompressed, true, nil
}

// ReadChunk decodes and returns the chunk at (x, z), retaining it in the
// loaded set. The second return value is false if no chunk is stored at
// that position.
func (m *Manager) ReadChunk(x, z int32) (*chunk.Chunk, bool, error) {
	idx := ChunkIndex(x, z)
	if c, ok := m.loaded[idx]; ok {
		return c, true, nil
	}

	raw, present, err := m.ReadChunkRaw(x, z)
	if err != nil || !present {
		return nil, present, err
	}

	_, tag, err := nbt.DecodeBytes(raw)
	if err != nil {
		return nil, false, err
	}
	root, ok := tag.(*nbt.Compound)
	if !ok {
		return nil, false, errs.ErrMalformedChunk
	}

	c, err := chunk.Decode(root, m.registry)
	if err != nil {
		return nil, false, err
	}
	c.ClearDirty()
	m.loaded[idx] = c

	return c, true, nil
}

// WriteChunk stores c as pending at its own (XPos, ZPos), marking it dirty
// so the next Save re-encodes it rather than byte-copying the old sector.
func (m *Manager) WriteChunk(c *chunk.Chunk) {
	idx := ChunkIndex(c.XPos, c.ZPos)
	c.MarkDirty()
	m.loaded[idx] = c
	m.dirty[idx] = true
}

// Save writes a new region file reflecting every loaded chunk, atomically
// replacing the original via a sibling "<path>.out" file swapped into
// place on success. Dirty chunks are re-encoded and zlib-compressed;
// clean chunks with a prior sector are byte-copied from the source file
// unchanged, so a Save with no dirty chunks reproduces the original file.
func (m *Manager) Save() error {
	outPath := m.path + ".out"
	out, err := os.OpenFile(outPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}

	if err := m.writeBody(out); err != nil {
		out.Close()
		os.Remove(outPath)

		return err
	}

	if err := out.Close(); err != nil {
		os.Remove(outPath)

		return err
	}

	if err := os.Rename(outPath, m.path); err != nil {
		return err
	}

	oldFile := m.file
	f, err := os.OpenFile(m.path, os.O_RDWR, 0644)
	if err != nil {
		return err
	}
	oldFile.Close()
	m.file = f

	return m.readHeader()
}

func (m *Manager) writeBody(out *os.File) error {
	if _, err := out.Write(make([]byte, HeaderSectors*SectorSize)); err != nil {
		return err
	}

	var newLocations [1024]Sector
	var newTimestamps [1024]uint32
	now := uint32(time.Now().Unix())

	for i := 0; i < 1024; i++ {
		c, isLoaded := m.loaded[i]
		if m.dirty[i] || (isLoaded && c.Dirty()) {
			sector, err := m.writeDirtyChunk(out, c)
			if err != nil {
				return err
			}
			newLocations[i] = sector
			if !sector.Empty() {
				newTimestamps[i] = now
			}

			continue
		}

		old := m.locations[i]
		if old.Empty() {
			continue
		}

		sector, err := m.copyChunkSectors(out, old)
		if err != nil {
			return err
		}
		newLocations[i] = sector
		newTimestamps[i] = m.timestamps[i]
	}

	if err := writeHeaderTo(out, newLocations, newTimestamps); err != nil {
		return err
	}

	m.locations = newLocations
	m.timestamps = newTimestamps
	for i := range m.dirty {
		delete(m.dirty, i)
	}
	for _, c := range m.loaded {
		c.ClearDirty()
	}

	return nil
}

func (m *Manager) writeDirtyChunk(out *os.File, c *chunk.Chunk) (Sector, error) {
	root, err := chunk.Encode(c, m.registry)
	if err != nil {
		return Sector{}, err
	}

	buf := pool.GetRegionBuffer()
	defer pool.PutRegionBuffer(buf)

	if err := nbt.Encode(buf, "", root); err != nil {
		return Sector{}, err
	}

	codec := compress.NewZlibCodec()
	compressed, err := codec.Compress(buf.Bytes())
	if err != nil {
		return Sector{}, errs.ErrCompressionFailure
	}

	offsetPos, err := out.Seek(0, io.SeekEnd)
	if err != nil {
		return Sector{}, err
	}

	totalLen := len(compressed) + 1
	header := make([]byte, 5)
	binary.BigEndian.PutUint32(header[0:4], uint32(totalLen))
	header[4] = byte(format.CompressionZlib)

	if _, err := out.Write(header); err != nil {
		return Sector{}, err
	}
	if _, err := out.Write(compressed); err != nil {
		return Sector{}, err
	}

	written := int64(len(header) + len(compressed))
	padded := alignUp(written)
	if padded > written {
		if _, err := out.Write(make([]byte, padded-written)); err != nil {
			return Sector{}, err
		}
	}

	return Sector{Offset: uint32(offsetPos / SectorSize), Count: uint8(padded / SectorSize)}, nil
}

func (m *Manager) copyChunkSectors(out *os.File, old Sector) (Sector, error) {
	offsetPos, err := out.Seek(0, io.SeekEnd)
	if err != nil {
		return Sector{}, err
	}

	n := int64(old.Count) * SectorSize
	buf, cleanup := pool.GetByteSlice(int(n))
	defer cleanup()
	if _, err := m.file.ReadAt(buf, int64(old.Offset)*SectorSize); err != nil {
		return Sector{}, err
	}
	if _, err := out.Write(buf); err != nil {
		return Sector{}, err
	}

	return Sector{Offset: uint32(offsetPos / SectorSize), Count: old.Count}, nil
}

func alignUp(n int64) int64 {
	return (n + SectorSize - 1) / SectorSize * SectorSize
}

func writeHeaderTo(out *os.File, locations [1024]Sector, timestamps [1024]uint32) error {
	header := make([]byte, HeaderSectors*SectorSize)

	for i, s := range locations {
		entry := header[i*4 : i*4+4]
		if s.Empty() {
			continue
		}
		entry[0] = byte(s.Offset >> 16)
		entry[1] = byte(s.Offset >> 8)
		entry[2] = byte(s.Offset)
		entry[3] = s.Count
	}

	for i, ts := range timestamps {
		off := 4096 + i*4
		binary.BigEndian.PutUint32(header[off:off+4], ts)
	}

	_, err := out.WriteAt(header, 0)

	return err
}
