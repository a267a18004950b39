package compress_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anvilkit/anvil/compress"
	"github.com/anvilkit/anvil/format"
)

func TestCodecsRoundTrip(t *testing.T) {
	data := []byte("the quick brown fox jumps over the lazy dog, repeated: the quick brown fox jumps over the lazy dog")

	for _, ct := range []format.CompressionType{format.CompressionGzip, format.CompressionZlib, format.CompressionNone} {
		t.Run(ct.String(), func(t *testing.T) {
			codec, err := compress.CreateCodec(ct, "test")
			require.NoError(t, err)

			compressed, err := codec.Compress(data)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, data, decompressed)
		})
	}
}

func TestCreateCodecRejectsUnknownType(t *testing.T) {
	_, err := compress.CreateCodec(format.CompressionType(99), "test")
	require.Error(t, err)
}

func TestGetCodecReturnsStatelessInstances(t *testing.T) {
	c1, err := compress.GetCodec(format.CompressionZlib)
	require.NoError(t, err)
	c2, err := compress.GetCodec(format.CompressionZlib)
	require.NoError(t, err)
	require.Equal(t, c1, c2)
}

func TestNoOpCompressorReturnsInputUnchanged(t *testing.T) {
	c := compress.NewNoOpCompressor()
	data := []byte("unchanged")

	out, err := c.Compress(data)
	require.NoError(t, err)
	require.Equal(t, data, out)

	back, err := c.Decompress(out)
	require.NoError(t, err)
	require.Equal(t, data, back)
}
