package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEngineIsBigEndian(t *testing.T) {
	require.Equal(t, binary.BigEndian, Engine())
}

func TestEngineImplementsEndianEngine(t *testing.T) {
	require.Implements(t, (*EndianEngine)(nil), Engine())
}

func TestEngineRoundTrip(t *testing.T) {
	engine := Engine()

	var v32 uint32 = 0x01020304
	b32 := make([]byte, 4)
	engine.PutUint32(b32, v32)
	require.Equal(t, byte(0x01), b32[0], "big endian puts MSB first")
	require.Equal(t, v32, engine.Uint32(b32))

	var v64 uint64 = 0x0102030405060708
	b64 := make([]byte, 8)
	engine.PutUint64(b64, v64)
	require.Equal(t, byte(0x01), b64[0])
	require.Equal(t, v64, engine.Uint64(b64))
}
