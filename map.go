// Package artkv is an in-memory map keyed by byte strings, backed by an
// adaptive radix tree with path compression. Lookup, insertion and deletion
// cost O(len(key)) regardless of how many keys are stored.
//
// A Map is not safe for concurrent use while any goroutine mutates it; wrap it
// in a lock or confine writes to one goroutine.
package artkv

import (
	"io"

	"github.com/AfshinJalili/artkv/internal/art"
)

type Map[V any] struct {
	tree *art.Tree[V]
	cfg  config
}

func New[V any](opts ...Option) *Map[V] {
	return &Map[V]{tree: art.New[V](), cfg: applyOptions(opts)}
}

func (m *Map[V]) checkKey(key []byte) error {
	if len(key) > m.cfg.MaxKeySize || !art.Fits(key) {
		return ErrOversized
	}
	return nil
}

// Entry walks toward key and returns the position for a later insert,
// modify or delete. Keys that can never be stored yield ErrOversized.
func (m *Map[V]) Entry(key []byte) (*Entry[V], error) {
	if err := m.checkKey(key); err != nil {
		return nil, err
	}
	return &Entry[V]{e: m.tree.Entry(key)}, nil
}

// Insert stores value under key if the key is absent and returns a reference
// to the stored value. The reference is valid until the next mutation. If
// the key is present the map is unchanged and an *OccupiedError is returned.
func (m *Map[V]) Insert(key []byte, value V) (*V, error) {
	ent, err := m.Entry(key)
	if err != nil {
		return nil, err
	}
	return ent.Insert(value)
}

// InsertWith is Insert with a value built by f only when key is absent. On
// collision it returns an *OccupiedFuncError carrying f.
func (m *Map[V]) InsertWith(key []byte, f func() V) (*V, error) {
	ent, err := m.Entry(key)
	if err != nil {
		return nil, err
	}
	return ent.InsertWith(f)
}

// Set stores value under key, replacing any existing value.
func (m *Map[V]) Set(key []byte, value V) (*V, error) {
	ent, err := m.Entry(key)
	if err != nil {
		return nil, err
	}
	if ref, ok := ent.Get(); ok {
		*ref = value
		return ref, nil
	}
	return ent.Insert(value)
}

// Lookup returns a reference to the value stored under key. The reference is
// valid until the next mutation.
func (m *Map[V]) Lookup(key []byte) (*V, bool) {
	return m.tree.Search(key)
}

func (m *Map[V]) Get(key []byte) (V, bool) {
	ref, ok := m.tree.Search(key)
	if !ok {
		var zero V
		return zero, false
	}
	return *ref, true
}

func (m *Map[V]) Has(key []byte) bool {
	_, ok := m.tree.Search(key)
	return ok
}

// Delete removes key and returns its value, or ErrKeyNotFound.
func (m *Map[V]) Delete(key []byte) (V, error) {
	v, ok := m.tree.Delete(key)
	if !ok {
		return v, ErrKeyNotFound
	}
	return v, nil
}

func (m *Map[V]) Len() int { return m.tree.Len() }

func (m *Map[V]) Stats() Stats { return m.tree.Stats() }

// Dump writes a human readable view of the tree structure to w.
func (m *Map[V]) Dump(w io.Writer) error { return m.tree.Dump(w) }
