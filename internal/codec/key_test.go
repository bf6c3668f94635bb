package codec

import (
	"bytes"
	"errors"
	"testing"
	"testing/quick"
)

func TestEncodeKeyTerminates(t *testing.T) {
	cases := [][]byte{nil, []byte("a"), {0x00}, {0x01}, {0x00, 0x01, 0x02}, []byte("car")}
	for _, key := range cases {
		enc := EncodeKey(nil, key)
		if enc[len(enc)-1] != KeyTerminator {
			t.Fatalf("key %q: missing terminator in %x", key, enc)
		}
		if bytes.IndexByte(enc[:len(enc)-1], KeyTerminator) >= 0 {
			t.Fatalf("key %q: terminator inside content %x", key, enc)
		}
		if len(enc) != EncodedKeyLen(key) {
			t.Fatalf("key %q: expected len %d, got %d", key, EncodedKeyLen(key), len(enc))
		}
		dec, err := DecodeKey(enc)
		if err != nil {
			t.Fatalf("decode %x: %v", enc, err)
		}
		if !bytes.Equal(dec, key) {
			t.Fatalf("round trip mismatch: %q != %q", dec, key)
		}
	}
}

func TestEncodeKeyAppends(t *testing.T) {
	dst := []byte("xx")
	enc := EncodeKey(dst, []byte("k"))
	if string(enc) != "xxk\x00" {
		t.Fatalf("unexpected append result %q", enc)
	}
}

func TestEncodeKeyNoPrefix(t *testing.T) {
	a := EncodeKey(nil, []byte("car"))
	b := EncodeKey(nil, []byte("cart"))
	if bytes.HasPrefix(b, a) || bytes.HasPrefix(a, b) {
		t.Fatalf("encoded keys must not be prefixes: %q %q", a, b)
	}
}

func TestEncodeKeyPreservesOrder(t *testing.T) {
	f := func(a, b []byte) bool {
		return bytes.Compare(a, b) == bytes.Compare(EncodeKey(nil, a), EncodeKey(nil, b))
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatalf("order: %v", err)
	}
}

func TestDecodeKeyErrors(t *testing.T) {
	if _, err := DecodeKey([]byte("abc")); !errors.Is(err, ErrMissingTerminator) {
		t.Fatalf("expected missing terminator, got %v", err)
	}
	if _, err := DecodeKey([]byte{'a', 0x00, 'b', 0x00}); !errors.Is(err, ErrMissingTerminator) {
		t.Fatalf("expected missing terminator for inner 0x00, got %v", err)
	}
	if _, err := DecodeKey([]byte{0x01, 0x07, 0x00}); !errors.Is(err, ErrBadEscape) {
		t.Fatalf("expected bad escape, got %v", err)
	}
	if _, err := DecodeKey([]byte{'a', 0x01, 0x00}); !errors.Is(err, ErrBadEscape) {
		t.Fatalf("expected bad escape for dangling escape, got %v", err)
	}
}
