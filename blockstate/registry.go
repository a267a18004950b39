package blockstate

import (
	"sort"
	"strings"
	"sync"

	"github.com/anvilkit/anvil/errs"
	"github.com/anvilkit/anvil/internal/hash"
)

// Handle is a stable, opaque reference to an interned BlockState. Handles
// are small integers issued in interning order and are valid for the
// lifetime of the Registry that issued them; they carry no meaning across
// processes or across distinct Registry instances.
type Handle uint32

// Property is a single block-state property key/value pair.
type Property struct {
	Key   string
	Value string
}

// BlockState identifies a block: its namespaced id plus an ordered set of
// properties. Two BlockStates compare equal for interning purposes if their
// normalized id matches and their property sets match regardless of order;
// the Properties slice itself preserves whatever order the caller (or NBT
// decoder) presented, so re-encoding reproduces it.
type BlockState struct {
	ID         string
	Properties []Property
}

type entry struct {
	state  BlockState
	handle Handle
}

// Registry is a process-wide (or, if the caller prefers, scoped) interning
// table for block states. The zero value is not usable; construct with
// NewRegistry.
//
// Concurrency: Intern and Lookup are serialized by a single mutex, held
// only for the duration of the map lookup/insert, matching the append-only
// contract of §4.3 — once issued, a handle is never reused or invalidated.
type Registry struct {
	mu       sync.Mutex
	byHash   map[uint64][]*entry
	byHandle []BlockState
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byHash: make(map[uint64][]*entry)}
}

var global = NewRegistry()

// Default returns the process-wide registry used implicitly by the chunk
// translator when no explicit Registry is supplied.
func Default() *Registry {
	return global
}

// NormalizeID prefixes a bare id (no namespace colon) with "minecraft:".
func NormalizeID(id string) string {
	if strings.IndexByte(id, ':') < 0 {
		return "minecraft:" + id
	}

	return id
}

func canonicalKey(id string, props []Property) string {
	sorted := append([]Property(nil), props...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })

	var sb strings.Builder
	sb.WriteString(id)
	for _, p := range sorted {
		sb.WriteByte(0)
		sb.WriteString(p.Key)
		sb.WriteByte('=')
		sb.WriteString(p.Value)
	}

	return sb.String()
}

func propertiesEqual(a, b []Property) bool {
	if len(a) != len(b) {
		return false
	}

	am := make(map[string]string, len(a))
	for _, p := range a {
		am[p.Key] = p.Value
	}
	for _, p := range b {
		v, ok := am[p.Key]
		if !ok || v != p.Value {
			return false
		}
	}

	return true
}

// Intern returns the handle for (id, properties), creating one if this is
// the first time this exact state has been seen. A bare id is normalized
// to "minecraft:id" before lookup.
func (r *Registry) Intern(id string, properties []Property) Handle {
	id = NormalizeID(id)
	key := canonicalKey(id, properties)
	h := hash.StateKey(key)

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.byHash[h] {
		if e.state.ID == id && propertiesEqual(e.state.Properties, properties) {
			return e.handle
		}
	}

	state := BlockState{ID: id, Properties: append([]Property(nil), properties...)}
	r.byHandle = append(r.byHandle, state)
	handle := Handle(len(r.byHandle))
	r.byHash[h] = append(r.byHash[h], &entry{state: state, handle: handle})

	return handle
}

// Lookup returns the BlockState associated with handle.
func (r *Registry) Lookup(h Handle) (BlockState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := int(h) - 1
	if idx < 0 || idx >= len(r.byHandle) {
		return BlockState{}, errs.ErrInvalidHandle
	}

	return r.byHandle[idx], nil
}

// FindByName returns the handle for (id, properties) if it has already
// been interned, without creating a new entry.
func (r *Registry) FindByName(id string, properties []Property) (Handle, bool) {
	id = NormalizeID(id)
	key := canonicalKey(id, properties)
	h := hash.StateKey(key)

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.byHash[h] {
		if e.state.ID == id && propertiesEqual(e.state.Properties, properties) {
			return e.handle, true
		}
	}

	return 0, false
}

// Count returns the number of distinct block states interned so far.
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.byHandle)
}
