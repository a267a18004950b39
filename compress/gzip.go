package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
)

// GzipCodec implements compression type 1 (GZip), per the Anvil region
// format. Vanilla servers have not written GZip-compressed chunks since
// the Anvil format's introduction, but readers must still support it.
type GzipCodec struct{}

var _ Codec = GzipCodec{}

// NewGzipCodec returns a codec using klauspost/compress's gzip
// implementation, which is a drop-in faster replacement for the standard
// library's compress/gzip.
func NewGzipCodec() GzipCodec {
	return GzipCodec{}
}

func (c GzipCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (c GzipCodec) Decompress(data []byte) ([]byte, error) {
	r, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}
