package codec

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang/snappy"
)

// CompressionType selects how a stored value body is encoded.
type CompressionType uint8

const (
	None   CompressionType = 0
	Snappy CompressionType = 1
)

var ErrUnknownCompression = errors.New("codec: unknown compression")

func ParseCompression(s string) (CompressionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return None, nil
	case "snappy":
		return Snappy, nil
	default:
		return None, fmt.Errorf("%w: %q", ErrUnknownCompression, s)
	}
}

func (c CompressionType) String() string {
	switch c {
	case None:
		return "none"
	case Snappy:
		return "snappy"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// Encode returns a freshly allocated encoding of src; src is never retained.
func Encode(c CompressionType, src []byte) ([]byte, error) {
	switch c {
	case None:
		return append([]byte(nil), src...), nil
	case Snappy:
		return snappy.Encode(nil, src), nil
	default:
		return nil, ErrUnknownCompression
	}
}

func Decode(c CompressionType, src []byte) ([]byte, error) {
	switch c {
	case None:
		return append([]byte(nil), src...), nil
	case Snappy:
		out, err := snappy.Decode(nil, src)
		if err != nil {
			return nil, fmt.Errorf("codec: snappy decode: %w", err)
		}
		return out, nil
	default:
		return nil, ErrUnknownCompression
	}
}
