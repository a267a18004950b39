package nbt

// Equal reports whether a and b are structurally identical, including
// Compound key insertion order and List element order — the round-trip
// property this codec guarantees.
func Equal(a, b Tag) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Type() != b.Type() {
		return false
	}

	switch at := a.(type) {
	case Byte:
		return at == b.(Byte)
	case Short:
		return at == b.(Short)
	case Int:
		return at == b.(Int)
	case Long:
		return at == b.(Long)
	case Float:
		return at == b.(Float)
	case Double:
		return at == b.(Double)
	case String:
		return at == b.(String)
	case ByteArray:
		return equalSlice(at, b.(ByteArray))
	case IntArray:
		return equalSlice(at, b.(IntArray))
	case LongArray:
		return equalSlice(at, b.(LongArray))
	case *List:
		return equalList(at, b.(*List))
	case *Compound:
		return equalCompound(at, b.(*Compound))
	default:
		return false
	}
}

func equalSlice[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func equalList(a, b *List) bool {
	if a.ElemType != b.ElemType || len(a.Items) != len(b.Items) {
		return false
	}
	for i := range a.Items {
		if !Equal(a.Items[i], b.Items[i]) {
			return false
		}
	}

	return true
}

func equalCompound(a, b *Compound) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i, key := range a.Keys() {
		if b.Keys()[i] != key {
			return false
		}
		av, _ := a.Get(key)
		bv, _ := b.Get(key)
		if !Equal(av, bv) {
			return false
		}
	}

	return true
}
