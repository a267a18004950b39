package compress

import (
	"bytes"
	"io"

	"github.com/klauspost/compress/zlib"
)

// ZlibCodec implements compression type 2 (Zlib), the compression vanilla
// Minecraft has used for chunk sectors since the Anvil format's
// introduction.
type ZlibCodec struct{}

var _ Codec = ZlibCodec{}

// NewZlibCodec returns a codec using klauspost/compress's zlib
// implementation.
func NewZlibCodec() ZlibCodec {
	return ZlibCodec{}
}

func (c ZlibCodec) Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (c ZlibCodec) Decompress(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}
