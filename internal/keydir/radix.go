package keydir

import (
	iradix "github.com/hashicorp/go-immutable-radix/v2"
)

// Radix is backed by an immutable radix tree; every mutation swaps in a new
// root.
type Radix[V any] struct {
	tree *iradix.Tree[V]
}

func NewRadix[V any]() *Radix[V] {
	return &Radix[V]{tree: iradix.New[V]()}
}

func (r *Radix[V]) Get(key []byte) (V, bool) {
	return r.tree.Get(key)
}

func (r *Radix[V]) Insert(key []byte, value V) (V, bool, error) {
	if existing, ok := r.tree.Get(key); ok {
		return existing, false, nil
	}
	k := append([]byte(nil), key...)
	tree, _, _ := r.tree.Insert(k, value)
	r.tree = tree
	var zero V
	return zero, true, nil
}

func (r *Radix[V]) Set(key []byte, value V) error {
	k := append([]byte(nil), key...)
	tree, _, _ := r.tree.Insert(k, value)
	r.tree = tree
	return nil
}

func (r *Radix[V]) Delete(key []byte) (V, bool) {
	tree, old, ok := r.tree.Delete(key)
	r.tree = tree
	return old, ok
}

func (r *Radix[V]) Len() int {
	return r.tree.Len()
}
