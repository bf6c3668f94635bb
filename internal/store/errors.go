package store

import (
	"errors"

	"github.com/AfshinJalili/artkv"
)

var (
	ErrKeyNotFound = artkv.ErrKeyNotFound
	ErrOversized   = artkv.ErrOversized
	ErrEmptyKey    = errors.New("artkv: empty key")
	ErrCorrupt     = errors.New("artkv: corrupt value")
)
