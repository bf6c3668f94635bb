package keydir

import (
	"errors"

	"github.com/AfshinJalili/artkv"
)

type Native[V any] struct {
	m *artkv.Map[V]
}

func NewNative[V any](opts ...artkv.Option) *Native[V] {
	return &Native[V]{m: artkv.New[V](opts...)}
}

func (n *Native[V]) Get(key []byte) (V, bool) {
	return n.m.Get(key)
}

func (n *Native[V]) Insert(key []byte, value V) (V, bool, error) {
	_, err := n.m.Insert(key, value)
	var occupied *artkv.OccupiedError[V]
	if errors.As(err, &occupied) {
		return *occupied.Existing, false, nil
	}
	if err != nil {
		var zero V
		return zero, false, err
	}
	var zero V
	return zero, true, nil
}

func (n *Native[V]) Set(key []byte, value V) error {
	_, err := n.m.Set(key, value)
	return err
}

func (n *Native[V]) Delete(key []byte) (V, bool) {
	v, err := n.m.Delete(key)
	return v, err == nil
}

func (n *Native[V]) Len() int {
	return n.m.Len()
}

func (n *Native[V]) Stats() artkv.Stats {
	return n.m.Stats()
}
