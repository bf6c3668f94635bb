package artkv

import "github.com/AfshinJalili/artkv/internal/art"

// Entry is a single walk toward one key. Check it, modify the stored value
// in place, then insert or delete without walking again. Insert, InsertWith
// and Delete end the entry; any other mutation of the map invalidates it.
type Entry[V any] struct {
	e *art.Entry[V]
}

func (e *Entry[V]) Occupied() bool { return e.e.Occupied() }

func (e *Entry[V]) Get() (*V, bool) { return e.e.Get() }

// Modify calls f with the stored value when the key is present.
func (e *Entry[V]) Modify(f func(*V)) *Entry[V] {
	e.e.Modify(f)
	return e
}

func (e *Entry[V]) Insert(value V) (*V, error) {
	ref, inserted := e.e.Insert(value)
	if !inserted {
		return nil, &OccupiedError[V]{Existing: ref, Value: value}
	}
	return ref, nil
}

// InsertWith inserts the value built by f. f is only called when the key is
// absent; otherwise it is returned unused in an *OccupiedFuncError.
func (e *Entry[V]) InsertWith(f func() V) (*V, error) {
	ref, inserted := e.e.InsertWith(f)
	if !inserted {
		return nil, &OccupiedFuncError[V]{Existing: ref, Func: f}
	}
	return ref, nil
}

func (e *Entry[V]) Delete() (V, error) {
	v, ok := e.e.Delete()
	if !ok {
		return v, ErrKeyNotFound
	}
	return v, nil
}
