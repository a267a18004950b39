package archive

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// lz4Writer wraps an io.WriteCloser around pierrec/lz4's frame writer, used
// by Fast mode.
type lz4Writer struct {
	w *lz4.Writer
}

func newLZ4Writer(w io.Writer) io.WriteCloser {
	zw := lz4.NewWriter(w)
	return &lz4Writer{w: zw}
}

func (l *lz4Writer) Write(p []byte) (int, error) {
	return l.w.Write(p)
}

func (l *lz4Writer) Close() error {
	return l.w.Close()
}

// lz4Reader adapts lz4.NewReader's plain io.Reader to io.ReadCloser, so
// callers can treat it uniformly with the zstd reader, which does need an
// explicit Close to release its cgo resources.
type lz4Reader struct {
	r io.Reader
}

func newLZ4Reader(r io.Reader) io.ReadCloser {
	return lz4Reader{r: lz4.NewReader(r)}
}

func (l lz4Reader) Read(p []byte) (int, error) {
	return l.r.Read(p)
}

func (l lz4Reader) Close() error {
	return nil
}
