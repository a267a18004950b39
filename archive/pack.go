package archive

import (
	"archive/tar"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/anvilkit/anvil/errs"
)

// Mode selects which compression scheme wraps the archive's tar stream.
type Mode int

const (
	// ModeFast wraps the tar stream in LZ4, favoring throughput.
	ModeFast Mode = iota
	// ModeArchival wraps the tar stream in Zstandard, favoring ratio.
	ModeArchival
)

func (m Mode) String() string {
	switch m {
	case ModeFast:
		return "fast"
	case ModeArchival:
		return "archival"
	default:
		return "unknown"
	}
}

func newWriter(w io.Writer, mode Mode) (io.WriteCloser, error) {
	switch mode {
	case ModeFast:
		return newLZ4Writer(w), nil
	case ModeArchival:
		return newZstdWriter(w), nil
	default:
		return nil, errs.ErrUnknownArchiveMode
	}
}

func newDecompressReader(r io.Reader, mode Mode) (io.ReadCloser, error) {
	switch mode {
	case ModeFast:
		return newLZ4Reader(r), nil
	case ModeArchival:
		return newZstdReader(r), nil
	default:
		return nil, errs.ErrUnknownArchiveMode
	}
}

// Pack walks worldDir and writes a compressed tar stream of its contents to
// w. Region files (.mca) and any sibling level data are stored with paths
// relative to worldDir.
func Pack(w io.Writer, worldDir string, mode Mode) error {
	zw, err := newWriter(w, mode)
	if err != nil {
		return err
	}

	tw := tar.NewWriter(zw)

	walkErr := filepath.Walk(worldDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(worldDir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		hdr.Name = rel

		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()

		_, err = io.Copy(tw, f)
		return err
	})
	if walkErr != nil {
		tw.Close()
		zw.Close()
		return walkErr
	}

	if err := tw.Close(); err != nil {
		zw.Close()
		return err
	}

	return zw.Close()
}

// Unpack reads a stream produced by Pack and recreates the world directory
// rooted at destDir, creating it if necessary.
func Unpack(r io.Reader, destDir string, mode Mode) error {
	zr, err := newDecompressReader(r, mode)
	if err != nil {
		return err
	}

	defer zr.Close()

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return err
	}

	tr := tar.NewReader(zr)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		target, err := safeJoin(destDir, hdr.Name)
		if err != nil {
			return err
		}

		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, 0o755); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
				return err
			}
			out, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
			if err != nil {
				return err
			}
			if _, err := io.Copy(out, tr); err != nil {
				out.Close()
				return err
			}
			if err := out.Close(); err != nil {
				return err
			}
		}
	}
}

// safeJoin resolves name under root, rejecting entries (e.g. "../etc/passwd")
// that would otherwise extract outside root.
func safeJoin(root, name string) (string, error) {
	root = filepath.Clean(root)
	joined := filepath.Join(root, filepath.FromSlash(name))
	if joined != root && !strings.HasPrefix(joined, root+string(filepath.Separator)) {
		return "", errs.ErrPathEscapesRoot
	}
	return joined, nil
}
