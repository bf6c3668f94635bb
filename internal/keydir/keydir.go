package keydir

import (
	"errors"
	"fmt"

	"github.com/AfshinJalili/artkv"
)

const (
	KindNative = "art"
	KindPlar   = "plar"
	KindRadix  = "iradix"
)

var ErrUnknownKind = errors.New("keydir: unknown index kind")

// Keydir maps keys to values. Implementations are not safe for concurrent
// mutation.
type Keydir[V any] interface {
	Get(key []byte) (V, bool)
	// Insert stores value only if key is absent. When the key is present it
	// returns the existing value and false.
	Insert(key []byte, value V) (V, bool, error)
	Set(key []byte, value V) error
	Delete(key []byte) (V, bool)
	Len() int
}

// Statser is implemented by backends that can describe their tree shape.
type Statser interface {
	Stats() artkv.Stats
}

// New returns the backend registered under kind. Options only apply to the
// native backend.
func New[V any](kind string, opts ...artkv.Option) (Keydir[V], error) {
	switch kind {
	case KindNative, "":
		return NewNative[V](opts...), nil
	case KindPlar:
		return NewART[V](), nil
	case KindRadix:
		return NewRadix[V](), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

func Kinds() []string {
	return []string{KindNative, KindPlar, KindRadix}
}
