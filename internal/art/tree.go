// Package art implements an adaptive radix tree with path compression over
// byte string keys.
//
// Keys are escaped and terminated before they enter the tree (see
// codec.EncodeKey), so no stored key is a prefix of another and every key ends
// at a leaf. Internal nodes size their child storage to their fan-out using
// four tiers holding 4, 16, 48 and 256 edges.
//
// A Tree is not safe for concurrent use when any goroutine mutates it.
package art

import "github.com/AfshinJalili/artkv/internal/codec"

// Tree maps byte string keys to values of type V. The zero Tree is empty and
// ready to use.
type Tree[V any] struct {
	root *node[V]
	size int
}

// New returns an empty tree. It is equivalent to new(Tree[V]) with the root
// allocated up front.
func New[V any]() *Tree[V] {
	t := &Tree[V]{}
	t.init()
	return t
}

func (t *Tree[V]) init() {
	if t.root == nil {
		t.root = &node[V]{body: newChildren[V](Node4, nil)}
	}
}

// Fits reports whether key is short enough to be inserted.
func Fits(key []byte) bool {
	return codec.EncodedKeyLen(key) <= MaxPrefixLen
}

// Entry walks the tree toward key. Insert through the returned Entry panics
// if key does not fit.
func (t *Tree[V]) Entry(key []byte) *Entry[V] {
	t.init()
	cur, rest := seek(&t.root, codec.EncodeKey(nil, key))
	return &Entry[V]{tree: t, cur: cur, rest: rest}
}

// Search returns a reference to the value stored under key, valid until the
// next mutation.
func (t *Tree[V]) Search(key []byte) (*V, bool) {
	return t.Entry(key).Get()
}

// Insert stores value under key unless the key is present; see Entry.Insert.
func (t *Tree[V]) Insert(key []byte, value V) (*V, bool) {
	return t.Entry(key).Insert(value)
}

// Delete removes key and returns its value.
func (t *Tree[V]) Delete(key []byte) (V, bool) {
	return t.Entry(key).Delete()
}

func (t *Tree[V]) Len() int { return t.size }
