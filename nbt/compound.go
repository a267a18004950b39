package nbt

import "github.com/anvilkit/anvil/format"

// Compound is an ordered map of named tags. Insertion order is preserved
// for write stability: re-encoding a decoded Compound reproduces the exact
// key order it was read in.
type Compound struct {
	keys   []string
	values map[string]Tag
}

// Type implements Tag.
func (*Compound) Type() format.TagType { return format.TagCompound }

// NewCompound creates an empty Compound.
func NewCompound() *Compound {
	return &Compound{values: make(map[string]Tag)}
}

// Len returns the number of entries in the compound.
func (c *Compound) Len() int {
	return len(c.keys)
}

// Get returns the tag stored under key, and whether it was present.
func (c *Compound) Get(key string) (Tag, bool) {
	if c == nil {
		return nil, false
	}
	v, ok := c.values[key]

	return v, ok
}

// Set stores tag under key. If key is new, it is appended to the end of the
// iteration order; if key already exists, its value is replaced in place
// without disturbing order.
func (c *Compound) Set(key string, tag Tag) {
	if c.values == nil {
		c.values = make(map[string]Tag)
	}
	if _, exists := c.values[key]; !exists {
		c.keys = append(c.keys, key)
	}
	c.values[key] = tag
}

// Delete removes key from the compound, if present.
func (c *Compound) Delete(key string) {
	if _, exists := c.values[key]; !exists {
		return
	}
	delete(c.values, key)
	for i, k := range c.keys {
		if k == key {
			c.keys = append(c.keys[:i], c.keys[i+1:]...)
			break
		}
	}
}

// Keys returns the compound's keys in insertion order. The caller must not
// modify the returned slice.
func (c *Compound) Keys() []string {
	return c.keys
}

// Range calls fn for each entry in insertion order, stopping early if fn
// returns false.
func (c *Compound) Range(fn func(key string, tag Tag) bool) {
	for _, k := range c.keys {
		if !fn(k, c.values[k]) {
			return
		}
	}
}

// Clone returns a shallow copy of the compound: the key order and top-level
// map are copied, but nested tag values are shared with the original.
func (c *Compound) Clone() *Compound {
	out := NewCompound()
	out.keys = append([]string(nil), c.keys...)
	for k, v := range c.values {
		out.values[k] = v
	}

	return out
}
