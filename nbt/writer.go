package nbt

import (
	"io"
	"math"

	"github.com/anvilkit/anvil/endian"
	"github.com/anvilkit/anvil/errs"
	"github.com/anvilkit/anvil/format"
	"github.com/anvilkit/anvil/internal/pool"
)

const maxStringBytes = 65535

type writer struct {
	w      io.Writer
	engine endian.EndianEngine
	buf    [8]byte
}

func newWriter(w io.Writer) *writer {
	return &writer{w: w, engine: endian.Engine()}
}

func (wr *writer) writeBytes(b []byte) error {
	_, err := wr.w.Write(b)
	return err
}

func (wr *writer) writeUint8(v uint8) error {
	wr.buf[0] = v
	return wr.writeBytes(wr.buf[:1])
}

func (wr *writer) writeInt8(v int8) error {
	return wr.writeUint8(uint8(v))
}

func (wr *writer) writeUint16(v uint16) error {
	wr.engine.PutUint16(wr.buf[:2], v)
	return wr.writeBytes(wr.buf[:2])
}

func (wr *writer) writeInt16(v int16) error {
	return wr.writeUint16(uint16(v))
}

func (wr *writer) writeUint32(v uint32) error {
	wr.engine.PutUint32(wr.buf[:4], v)
	return wr.writeBytes(wr.buf[:4])
}

func (wr *writer) writeInt32(v int32) error {
	return wr.writeUint32(uint32(v))
}

func (wr *writer) writeUint64(v uint64) error {
	wr.engine.PutUint64(wr.buf[:8], v)
	return wr.writeBytes(wr.buf[:8])
}

func (wr *writer) writeInt64(v int64) error {
	return wr.writeUint64(uint64(v))
}

func (wr *writer) writeFloat32(v float32) error {
	return wr.writeUint32(math.Float32bits(v))
}

func (wr *writer) writeFloat64(v float64) error {
	return wr.writeUint64(math.Float64bits(v))
}

func (wr *writer) writeString(s string) error {
	if len(s) > maxStringBytes {
		return errs.ErrStringTooLong
	}
	if err := wr.writeUint16(uint16(len(s))); err != nil {
		return err
	}

	return wr.writeBytes([]byte(s))
}

func writeArrayLength(wr *writer, n int) error {
	if n > math.MaxInt32 {
		return errs.ErrArrayTooLong
	}

	return wr.writeInt32(int32(n))
}

// Encode writes one named tag to w: the root of an NBT stream.
//
// The root is framed as tag-id, name-length, name, payload — no outer
// Compound wrapper beyond the root tag itself.
func Encode(w io.Writer, name string, tag Tag) error {
	wr := newWriter(w)
	if tag == nil {
		return errs.ErrUnknownTag
	}

	if err := wr.writeUint8(uint8(tag.Type())); err != nil {
		return err
	}
	if err := wr.writeString(name); err != nil {
		return err
	}

	return wr.encodePayload(tag)
}

// EncodeBytes encodes name/tag into a freshly allocated byte slice.
func EncodeBytes(name string, tag Tag) ([]byte, error) {
	buf := pool.GetNBTBuffer()
	defer pool.PutNBTBuffer(buf)

	if err := Encode(buf, name, tag); err != nil {
		return nil, err
	}

	out := make([]byte, buf.Len())
	copy(out, buf.Bytes())

	return out, nil
}

func (wr *writer) encodePayload(tag Tag) error {
	switch t := tag.(type) {
	case Byte:
		return wr.writeInt8(int8(t))
	case Short:
		return wr.writeInt16(int16(t))
	case Int:
		return wr.writeInt32(int32(t))
	case Long:
		return wr.writeInt64(int64(t))
	case Float:
		return wr.writeFloat32(float32(t))
	case Double:
		return wr.writeFloat64(float64(t))
	case ByteArray:
		return wr.encodeByteArray(t)
	case String:
		return wr.writeString(string(t))
	case IntArray:
		return wr.encodeIntArray(t)
	case LongArray:
		return wr.encodeLongArray(t)
	case *List:
		return wr.encodeList(t)
	case *Compound:
		return wr.encodeCompound(t)
	default:
		return errs.ErrUnknownTag
	}
}

func (wr *writer) encodeByteArray(a ByteArray) error {
	if err := writeArrayLength(wr, len(a)); err != nil {
		return err
	}
	for _, v := range a {
		if err := wr.writeInt8(v); err != nil {
			return err
		}
	}

	return nil
}

func (wr *writer) encodeIntArray(a IntArray) error {
	if err := writeArrayLength(wr, len(a)); err != nil {
		return err
	}
	for _, v := range a {
		if err := wr.writeInt32(v); err != nil {
			return err
		}
	}

	return nil
}

func (wr *writer) encodeLongArray(a LongArray) error {
	if err := writeArrayLength(wr, len(a)); err != nil {
		return err
	}
	for _, v := range a {
		if err := wr.writeInt64(v); err != nil {
			return err
		}
	}

	return nil
}

func (wr *writer) encodeList(l *List) error {
	if err := wr.writeUint8(uint8(l.ElemType)); err != nil {
		return err
	}
	if err := writeArrayLength(wr, len(l.Items)); err != nil {
		return err
	}

	for _, item := range l.Items {
		if item.Type() != l.ElemType {
			return errs.ErrHeterogeneousList
		}
		if err := wr.encodePayload(item); err != nil {
			return err
		}
	}

	return nil
}

func (wr *writer) encodeCompound(c *Compound) error {
	for _, key := range c.Keys() {
		tag, _ := c.Get(key)
		if err := wr.writeUint8(uint8(tag.Type())); err != nil {
			return err
		}
		if err := wr.writeString(key); err != nil {
			return err
		}
		if err := wr.encodePayload(tag); err != nil {
			return err
		}
	}

	return wr.writeUint8(uint8(format.TagEnd))
}
