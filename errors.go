package artkv

import "errors"

var (
	ErrKeyNotFound = errors.New("artkv: key not found")
	ErrKeyExists   = errors.New("artkv: key exists")
	ErrOversized   = errors.New("artkv: key exceeds max size")
)

// OccupiedError is returned by Insert when the key is already present. It
// carries a reference to the stored value and the value that was not
// inserted, so the caller can overwrite, merge or discard.
type OccupiedError[V any] struct {
	Existing *V
	Value    V
}

func (e *OccupiedError[V]) Error() string { return ErrKeyExists.Error() }

func (e *OccupiedError[V]) Unwrap() error { return ErrKeyExists }

// OccupiedFuncError is the InsertWith counterpart of OccupiedError: the
// generator was never called and is handed back in Func.
type OccupiedFuncError[V any] struct {
	Existing *V
	Func     func() V
}

func (e *OccupiedFuncError[V]) Error() string { return ErrKeyExists.Error() }

func (e *OccupiedFuncError[V]) Unwrap() error { return ErrKeyExists }
