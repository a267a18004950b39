package archive

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/anvilkit/anvil/errs"
	"github.com/stretchr/testify/require"
)

func writeWorldFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	require.NoError(t, os.MkdirAll(filepath.Join(dir, "region"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "region", "r.0.0.mca"), []byte("fake region payload"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "level.dat"), []byte("fake level data"), 0o644))

	return dir
}

func TestPackUnpackRoundTripFast(t *testing.T) {
	src := writeWorldFixture(t)

	var buf bytes.Buffer
	require.NoError(t, Pack(&buf, src, ModeFast))

	dest := t.TempDir()
	require.NoError(t, Unpack(&buf, dest, ModeFast))

	got, err := os.ReadFile(filepath.Join(dest, "region", "r.0.0.mca"))
	require.NoError(t, err)
	require.Equal(t, "fake region payload", string(got))

	got, err = os.ReadFile(filepath.Join(dest, "level.dat"))
	require.NoError(t, err)
	require.Equal(t, "fake level data", string(got))
}

func TestPackUnpackRoundTripArchival(t *testing.T) {
	src := writeWorldFixture(t)

	var buf bytes.Buffer
	require.NoError(t, Pack(&buf, src, ModeArchival))

	dest := t.TempDir()
	require.NoError(t, Unpack(&buf, dest, ModeArchival))

	got, err := os.ReadFile(filepath.Join(dest, "region", "r.0.0.mca"))
	require.NoError(t, err)
	require.Equal(t, "fake region payload", string(got))
}

func TestPackRejectsUnknownMode(t *testing.T) {
	src := writeWorldFixture(t)
	var buf bytes.Buffer
	err := Pack(&buf, src, Mode(99))
	require.ErrorIs(t, err, errs.ErrUnknownArchiveMode)
}

func TestSafeJoinRejectsPathEscape(t *testing.T) {
	_, err := safeJoin(t.TempDir(), "../../etc/passwd")
	require.Error(t, err)
}

func TestModeStringValues(t *testing.T) {
	require.Equal(t, "fast", ModeFast.String())
	require.Equal(t, "archival", ModeArchival.String())
	require.Equal(t, "unknown", Mode(99).String())
}
