package codec

import "errors"

// Key encoding. Every key entering the tree is escaped so that KeyTerminator
// never occurs in its content, then terminated with KeyTerminator. No encoded
// key is a prefix of another and byte order is preserved.
const (
	KeyTerminator byte = 0x00
	keyEscape     byte = 0x01
)

var (
	ErrMissingTerminator = errors.New("codec: key missing terminator")
	ErrBadEscape         = errors.New("codec: invalid key escape")
)

// EncodedKeyLen returns len(EncodeKey(nil, key)) without encoding.
func EncodedKeyLen(key []byte) int {
	n := len(key) + 1
	for _, b := range key {
		if b <= keyEscape {
			n++
		}
	}
	return n
}

// EncodeKey appends the encoding of key to dst.
func EncodeKey(dst, key []byte) []byte {
	if cap(dst)-len(dst) < EncodedKeyLen(key) {
		grown := make([]byte, len(dst), len(dst)+EncodedKeyLen(key))
		copy(grown, dst)
		dst = grown
	}
	for _, b := range key {
		switch b {
		case KeyTerminator:
			dst = append(dst, keyEscape, 0x01)
		case keyEscape:
			dst = append(dst, keyEscape, 0x02)
		default:
			dst = append(dst, b)
		}
	}
	return append(dst, KeyTerminator)
}

func DecodeKey(enc []byte) ([]byte, error) {
	if len(enc) == 0 || enc[len(enc)-1] != KeyTerminator {
		return nil, ErrMissingTerminator
	}
	out := make([]byte, 0, len(enc)-1)
	for i := 0; i < len(enc)-1; i++ {
		b := enc[i]
		switch b {
		case KeyTerminator:
			return nil, ErrMissingTerminator
		case keyEscape:
			i++
			if i >= len(enc)-1 {
				return nil, ErrBadEscape
			}
			switch enc[i] {
			case 0x01:
				out = append(out, KeyTerminator)
			case 0x02:
				out = append(out, keyEscape)
			default:
				return nil, ErrBadEscape
			}
		default:
			out = append(out, b)
		}
	}
	return out, nil
}
