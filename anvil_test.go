package anvil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/anvilkit/anvil/archive"
	"github.com/anvilkit/anvil/blockstate"
	"github.com/stretchr/testify/require"
)

// TestOpenRegionRejectsMissingFile verifies the facade forwards to region.Open.
func TestOpenRegionRejectsMissingFile(t *testing.T) {
	_, err := OpenRegion(filepath.Join(t.TempDir(), "missing.mca"))
	require.Error(t, err)
}

// TestOpenRegionWithRegistryUsesGivenRegistry verifies the facade opens a
// region against a caller-supplied registry without interning anything into
// it.
func TestOpenRegionWithRegistryUsesGivenRegistry(t *testing.T) {
	path := filepath.Join(t.TempDir(), "r.0.0.mca")
	require.NoError(t, os.WriteFile(path, make([]byte, 2*4096), 0o644))

	registry := blockstate.NewRegistry()
	mgr, err := OpenRegionWithRegistry(path, registry)
	require.NoError(t, err)
	defer mgr.Close()

	require.Equal(t, 0, registry.Count())
}

func TestNewChunkStartsEmpty(t *testing.T) {
	c := NewChunk(3, -7)
	require.NotNil(t, c)
	require.Empty(t, c.Sections())
}

func TestInternUsesDefaultRegistry(t *testing.T) {
	handle := Intern("stone")
	state, err := DefaultRegistry().Lookup(handle)
	require.NoError(t, err)
	require.Equal(t, "minecraft:stone", state.ID)
}

func TestPackUnpackWorldRoundTrip(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(src, "region"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(src, "region", "r.0.0.mca"), []byte("payload"), 0o644))

	var buf bytes.Buffer
	require.NoError(t, PackWorld(&buf, src, archive.ModeFast))

	dst := t.TempDir()
	require.NoError(t, UnpackWorld(&buf, dst, archive.ModeFast))

	got, err := os.ReadFile(filepath.Join(dst, "region", "r.0.0.mca"))
	require.NoError(t, err)
	require.Equal(t, "payload", string(got))
}
