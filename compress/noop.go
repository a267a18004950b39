package compress

// NoOpCompressor implements compression type 3: chunk data stored
// uncompressed. Compress and Decompress both return the input unchanged.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor returns a codec that copies data through unchanged.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns data as-is. The returned slice shares the input's
// underlying array.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns data as-is. The returned slice shares the input's
// underlying array.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
