package nbt

import "github.com/anvilkit/anvil/format"

// Tag is the common interface satisfied by every NBT payload type.
//
// The twelve concrete tag kinds (List and Compound among them) each
// implement Type to report their wire tag id; the codec switches on the concrete
// type rather than on a stored discriminant.
type Tag interface {
	Type() format.TagType
}

// Byte is a signed 8-bit NBT value.
type Byte int8

// Type implements Tag.
func (Byte) Type() format.TagType { return format.TagByte }

// Short is a signed 16-bit NBT value.
type Short int16

// Type implements Tag.
func (Short) Type() format.TagType { return format.TagShort }

// Int is a signed 32-bit NBT value.
type Int int32

// Type implements Tag.
func (Int) Type() format.TagType { return format.TagInt }

// Long is a signed 64-bit NBT value.
type Long int64

// Type implements Tag.
func (Long) Type() format.TagType { return format.TagLong }

// Float is an IEEE-754 32-bit NBT value.
type Float float32

// Type implements Tag.
func (Float) Type() format.TagType { return format.TagFloat }

// Double is an IEEE-754 64-bit NBT value.
type Double float64

// Type implements Tag.
func (Double) Type() format.TagType { return format.TagDouble }

// ByteArray is a length-prefixed array of signed bytes.
type ByteArray []int8

// Type implements Tag.
func (ByteArray) Type() format.TagType { return format.TagByteArray }

// String is a length-prefixed UTF-8 string.
type String string

// Type implements Tag.
func (String) Type() format.TagType { return format.TagString }

// IntArray is a length-prefixed array of signed 32-bit integers.
type IntArray []int32

// Type implements Tag.
func (IntArray) Type() format.TagType { return format.TagIntArray }

// LongArray is a length-prefixed array of signed 64-bit integers.
type LongArray []int64

// Type implements Tag.
func (LongArray) Type() format.TagType { return format.TagLongArray }

// List is a homogeneous sequence of tags sharing one element type. The
// element type is written once in the List header; an empty list may
// declare ElemType as TagEnd.
type List struct {
	ElemType format.TagType
	Items    []Tag
}

// Type implements Tag.
func (List) Type() format.TagType { return format.TagList }

// NewList creates an empty List declaring the given element type.
func NewList(elemType format.TagType) *List {
	return &List{ElemType: elemType}
}

// Append adds an item to the list. The caller is responsible for ensuring
// item.Type() matches ElemType; Encode rejects a mismatch.
func (l *List) Append(item Tag) {
	l.Items = append(l.Items, item)
}
