package nbt

import (
	"io"
	"math"
	"unicode/utf8"

	"github.com/anvilkit/anvil/endian"
	"github.com/anvilkit/anvil/errs"
	"github.com/anvilkit/anvil/format"
)

// reader sequences big-endian primitive reads off an io.Reader, the way
// the codec's wire framing (§4.1) expects: every multi-byte field is
// big-endian, with no seeking or backtracking required.
type reader struct {
	r       io.Reader
	engine  endian.EndianEngine
	scratch [8]byte
}

func newReader(r io.Reader) *reader {
	return &reader{r: r, engine: endian.Engine()}
}

func (rd *reader) readN(n int) ([]byte, error) {
	buf := rd.scratch[:n]
	if _, err := io.ReadFull(rd.r, buf); err != nil {
		return nil, errs.ErrUnexpectedEOF
	}

	return buf, nil
}

func (rd *reader) readBytes(n int) ([]byte, error) {
	if n == 0 {
		return nil, nil
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(rd.r, buf); err != nil {
		return nil, errs.ErrUnexpectedEOF
	}

	return buf, nil
}

func (rd *reader) readUint8() (uint8, error) {
	b, err := rd.readN(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

func (rd *reader) readInt8() (int8, error) {
	v, err := rd.readUint8()
	return int8(v), err
}

func (rd *reader) readUint16() (uint16, error) {
	b, err := rd.readN(2)
	if err != nil {
		return 0, err
	}

	return rd.engine.Uint16(b), nil
}

func (rd *reader) readInt16() (int16, error) {
	v, err := rd.readUint16()
	return int16(v), err
}

func (rd *reader) readUint32() (uint32, error) {
	b, err := rd.readN(4)
	if err != nil {
		return 0, err
	}

	return rd.engine.Uint32(b), nil
}

func (rd *reader) readInt32() (int32, error) {
	v, err := rd.readUint32()
	return int32(v), err
}

func (rd *reader) readUint64() (uint64, error) {
	b, err := rd.readN(8)
	if err != nil {
		return 0, err
	}

	return rd.engine.Uint64(b), nil
}

func (rd *reader) readInt64() (int64, error) {
	v, err := rd.readUint64()
	return int64(v), err
}

func (rd *reader) readFloat32() (float32, error) {
	v, err := rd.readUint32()
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(v), nil
}

func (rd *reader) readFloat64() (float64, error) {
	v, err := rd.readUint64()
	if err != nil {
		return 0, err
	}

	return math.Float64frombits(v), nil
}

func (rd *reader) readString() (string, error) {
	length, err := rd.readUint16()
	if err != nil {
		return "", err
	}

	buf, err := rd.readBytes(int(length))
	if err != nil {
		return "", err
	}

	if !utf8.Valid(buf) {
		return "", errs.ErrMalformedString
	}

	return string(buf), nil
}

// Decode reads one named tag from r: the root of an NBT stream. Nested
// payloads are read by decodePayload.
//
// The root of a file is written as tag-id, name-length, name, payload; no
// outer Compound wrapper is implied beyond the root tag itself.
func Decode(r io.Reader) (string, Tag, error) {
	rd := newReader(r)

	tagID, err := rd.readUint8()
	if err != nil {
		return "", nil, err
	}

	tagType := format.TagType(tagID)
	if !tagType.Valid() {
		return "", nil, errs.ErrUnknownTag
	}
	if tagType == format.TagEnd {
		return "", nil, errs.ErrUnknownTag
	}

	name, err := rd.readString()
	if err != nil {
		return "", nil, err
	}

	tag, err := rd.decodePayload(tagType)
	if err != nil {
		return "", nil, err
	}

	return name, tag, nil
}

// DecodeBytes decodes a complete NBT byte slice (as produced by EncodeBytes
// or read from a decompressed chunk payload).
func DecodeBytes(data []byte) (string, Tag, error) {
	return Decode(bytesReader(data))
}

func (rd *reader) decodePayload(tagType format.TagType) (Tag, error) {
	switch tagType {
	case format.TagByte:
		v, err := rd.readInt8()
		return Byte(v), err
	case format.TagShort:
		v, err := rd.readInt16()
		return Short(v), err
	case format.TagInt:
		v, err := rd.readInt32()
		return Int(v), err
	case format.TagLong:
		v, err := rd.readInt64()
		return Long(v), err
	case format.TagFloat:
		v, err := rd.readFloat32()
		return Float(v), err
	case format.TagDouble:
		v, err := rd.readFloat64()
		return Double(v), err
	case format.TagByteArray:
		return rd.decodeByteArray()
	case format.TagString:
		v, err := rd.readString()
		return String(v), err
	case format.TagList:
		return rd.decodeList()
	case format.TagCompound:
		return rd.decodeCompound()
	case format.TagIntArray:
		return rd.decodeIntArray()
	case format.TagLongArray:
		return rd.decodeLongArray()
	default:
		return nil, errs.ErrUnknownTag
	}
}

func (rd *reader) decodeByteArray() (Tag, error) {
	length, err := rd.readInt32()
	if err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, errs.ErrMalformedLength
	}

	out := make(ByteArray, length)
	for i := range out {
		v, err := rd.readInt8()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

func (rd *reader) decodeIntArray() (Tag, error) {
	length, err := rd.readInt32()
	if err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, errs.ErrMalformedLength
	}

	out := make(IntArray, length)
	for i := range out {
		v, err := rd.readInt32()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

func (rd *reader) decodeLongArray() (Tag, error) {
	length, err := rd.readInt32()
	if err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, errs.ErrMalformedLength
	}

	out := make(LongArray, length)
	for i := range out {
		v, err := rd.readInt64()
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

func (rd *reader) decodeList() (Tag, error) {
	elemID, err := rd.readUint8()
	if err != nil {
		return nil, err
	}
	elemType := format.TagType(elemID)
	if !elemType.Valid() {
		return nil, errs.ErrUnknownTag
	}

	length, err := rd.readInt32()
	if err != nil {
		return nil, err
	}
	if length < 0 {
		return nil, errs.ErrMalformedLength
	}
	if elemType == format.TagEnd && length != 0 {
		return nil, errs.ErrMalformedList
	}

	items := make([]Tag, length)
	for i := range items {
		item, err := rd.decodePayload(elemType)
		if err != nil {
			return nil, err
		}
		items[i] = item
	}

	return &List{ElemType: elemType, Items: items}, nil
}

func (rd *reader) decodeCompound() (Tag, error) {
	c := NewCompound()
	for {
		tagID, err := rd.readUint8()
		if err != nil {
			return nil, err
		}
		tagType := format.TagType(tagID)
		if tagType == format.TagEnd {
			return c, nil
		}
		if !tagType.Valid() {
			return nil, errs.ErrUnknownTag
		}

		name, err := rd.readString()
		if err != nil {
			return nil, err
		}

		payload, err := rd.decodePayload(tagType)
		if err != nil {
			return nil, err
		}

		c.Set(name, payload)
	}
}
