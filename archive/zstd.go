package archive

import (
	"io"

	"github.com/valyala/gozstd"
)

// zstdWriter wraps an io.WriteCloser around gozstd's streaming writer, used
// by Archival mode. gozstd binds to libzstd via cgo, trading build
// portability and speed for a considerably better ratio than LZ4.
type zstdWriter struct {
	w *gozstd.Writer
}

func newZstdWriter(w io.Writer) io.WriteCloser {
	return &zstdWriter{w: gozstd.NewWriterLevel(w, zstdArchivalLevel)}
}

func (z *zstdWriter) Write(p []byte) (int, error) {
	return z.w.Write(p)
}

func (z *zstdWriter) Close() error {
	if err := z.w.Close(); err != nil {
		return err
	}
	z.w.Release()
	return nil
}

// zstdArchivalLevel favors ratio over speed; archival packs are produced
// once and read rarely.
const zstdArchivalLevel = 19

// zstdReader wraps gozstd's streaming reader, releasing its underlying
// cgo-held decompression context on Close rather than waiting on the
// garbage collector.
type zstdReader struct {
	r *gozstd.Reader
}

func newZstdReader(r io.Reader) io.ReadCloser {
	return &zstdReader{r: gozstd.NewReader(r)}
}

func (z *zstdReader) Read(p []byte) (int, error) {
	return z.r.Read(p)
}

func (z *zstdReader) Close() error {
	z.r.Release()
	return nil
}
