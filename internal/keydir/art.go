package keydir

import art "github.com/plar/go-adaptive-radix-tree"

// ART is backed by github.com/plar/go-adaptive-radix-tree. Values are boxed
// in the tree's interface{} slots.
type ART[V any] struct {
	tree art.Tree
}

func NewART[V any]() *ART[V] {
	return &ART[V]{tree: art.New()}
}

func (a *ART[V]) Get(key []byte) (V, bool) {
	v, ok := a.tree.Search(key)
	if !ok {
		var zero V
		return zero, false
	}
	return v.(V), true
}

func (a *ART[V]) Insert(key []byte, value V) (V, bool, error) {
	if existing, ok := a.Get(key); ok {
		return existing, false, nil
	}
	k := append([]byte(nil), key...)
	a.tree.Insert(k, value)
	var zero V
	return zero, true, nil
}

func (a *ART[V]) Set(key []byte, value V) error {
	k := append([]byte(nil), key...)
	a.tree.Insert(k, value)
	return nil
}

func (a *ART[V]) Delete(key []byte) (V, bool) {
	v, ok := a.tree.Delete(key)
	if !ok {
		var zero V
		return zero, false
	}
	return v.(V), true
}

func (a *ART[V]) Len() int {
	return a.tree.Size()
}
