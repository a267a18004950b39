package nbt_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/anvilkit/anvil/format"
	"github.com/anvilkit/anvil/nbt"
)

// S1: encode Compound{"hello": String("world"), "n": Int(42)} produces the
// bytes from spec §8.
func TestScenarioS1(t *testing.T) {
	c := nbt.NewCompound()
	c.Set("hello", nbt.String("world"))
	c.Set("n", nbt.Int(42))

	got, err := nbt.EncodeBytes("", c)
	require.NoError(t, err)

	want := []byte{
		0x0A, 0x00, 0x00,
		0x08, 0x00, 0x05, 'h', 'e', 'l', 'l', 'o', 0x00, 0x05, 'w', 'o', 'r', 'l', 'd',
		0x03, 0x00, 0x01, 'n', 0x00, 0x00, 0x00, 0x2A,
		0x00,
	}
	require.Equal(t, want, got)
}

func TestRoundTripPrimitives(t *testing.T) {
	c := nbt.NewCompound()
	c.Set("b", nbt.Byte(-12))
	c.Set("s", nbt.Short(-1000))
	c.Set("i", nbt.Int(-70000))
	c.Set("l", nbt.Long(-1<<40))
	c.Set("f", nbt.Float(3.5))
	c.Set("d", nbt.Double(-2.25))
	c.Set("str", nbt.String("hello, world"))
	c.Set("ba", nbt.ByteArray{1, -2, 3})
	c.Set("ia", nbt.IntArray{1, -2, 3, 4})
	c.Set("la", nbt.LongArray{1, -2, 3, 4, 5})

	nested := nbt.NewCompound()
	nested.Set("inner", nbt.Byte(1))
	c.Set("nested", nested)

	list := nbt.NewList(format.TagInt)
	list.Append(nbt.Int(1))
	list.Append(nbt.Int(2))
	list.Append(nbt.Int(3))
	c.Set("list", list)

	empty := nbt.NewList(format.TagEnd)
	c.Set("empty", empty)

	data, err := nbt.EncodeBytes("root", c)
	require.NoError(t, err)

	name, tag, err := nbt.DecodeBytes(data)
	require.NoError(t, err)
	require.Equal(t, "root", name)
	require.True(t, nbt.Equal(c, tag), "expected:\n%s\ngot:\n%s", nbt.Print("", c), nbt.Print("", tag))
}

func TestCompoundPreservesOrder(t *testing.T) {
	c := nbt.NewCompound()
	c.Set("z", nbt.Byte(1))
	c.Set("a", nbt.Byte(2))
	c.Set("m", nbt.Byte(3))

	require.Equal(t, []string{"z", "a", "m"}, c.Keys())

	data, err := nbt.EncodeBytes("", c)
	require.NoError(t, err)

	_, tag, err := nbt.DecodeBytes(data)
	require.NoError(t, err)

	decoded := tag.(*nbt.Compound)
	require.Equal(t, []string{"z", "a", "m"}, decoded.Keys())
}

func TestEmptyTypelessListIsValid(t *testing.T) {
	list := nbt.NewList(format.TagEnd)
	data, err := nbt.EncodeBytes("", list)
	require.NoError(t, err)

	_, tag, err := nbt.DecodeBytes(data)
	require.NoError(t, err)
	decoded := tag.(*nbt.List)
	require.Equal(t, format.TagEnd, decoded.ElemType)
	require.Empty(t, decoded.Items)
}

func TestHeterogeneousListRejectedOnEncode(t *testing.T) {
	list := nbt.NewList(format.TagInt)
	list.Append(nbt.Int(1))
	list.Append(nbt.String("oops"))

	_, err := nbt.EncodeBytes("", list)
	require.Error(t, err)
}

func TestStringTooLongRejected(t *testing.T) {
	huge := make([]byte, 70000)
	_, err := nbt.EncodeBytes("", nbt.String(huge))
	require.Error(t, err)
}

func TestMalformedStringRejectsInvalidUTF8(t *testing.T) {
	data := []byte{
		0x08,       // TAG_String
		0x00, 0x00, // name length 0
		0x00, 0x02, // value length 2
		0xFF, 0xFE, // invalid UTF-8
	}
	_, _, err := nbt.DecodeBytes(data)
	require.Error(t, err)
}

func TestNegativeArrayLengthRejected(t *testing.T) {
	data := []byte{
		0x07,       // TAG_Byte_Array
		0x00, 0x00, // name length 0
		0xFF, 0xFF, 0xFF, 0xFF, // length -1
	}
	_, _, err := nbt.DecodeBytes(data)
	require.Error(t, err)
}

func TestUnknownTagRejected(t *testing.T) {
	data := []byte{0xFE, 0x00, 0x00}
	_, _, err := nbt.DecodeBytes(data)
	require.Error(t, err)
}

func TestTypelessListWithNonzeroLengthIsMalformed(t *testing.T) {
	data := []byte{
		0x09,       // TAG_List
		0x00, 0x00, // name length 0
		0x00,                   // element type 0 (End)
		0x00, 0x00, 0x00, 0x01, // length 1
	}
	_, _, err := nbt.DecodeBytes(data)
	require.Error(t, err)
}
