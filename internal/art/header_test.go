package art

import (
	"bytes"
	"testing"
)

func TestHeaderTruncate(t *testing.T) {
	h := newHeader([]byte("carton"))
	rest := h.truncate(3)
	if string(h.bytes()) != "car" || h.Len() != 3 {
		t.Fatalf("expected car, got %q", h.bytes())
	}
	if string(rest) != "ton" {
		t.Fatalf("expected remainder ton, got %q", rest)
	}
	rest[0] = 'X'
	if string(h.bytes()) != "car" {
		t.Fatalf("remainder must not alias the header")
	}
}

func TestHeaderCopiesInput(t *testing.T) {
	src := []byte("abc")
	h := newHeader(src)
	src[0] = 'z'
	if string(h.bytes()) != "abc" {
		t.Fatalf("header aliased its input: %q", h.bytes())
	}
}

func TestHeaderMatch(t *testing.T) {
	h := newHeader([]byte("abcd"))
	cases := []struct {
		key  string
		want int
	}{
		{"abcd", 4},
		{"abcdef", 4},
		{"abx", 2},
		{"ab", 2},
		{"", 0},
		{"z", 0},
	}
	for _, c := range cases {
		if got := h.match([]byte(c.key)); got != c.want {
			t.Fatalf("match %q: expected %d, got %d", c.key, c.want, got)
		}
	}
}

func TestHeaderOverflowPanics(t *testing.T) {
	if h := newHeader(bytes.Repeat([]byte{'a'}, MaxPrefixLen)); h.Len() != MaxPrefixLen {
		t.Fatalf("expected max-length header to be accepted")
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for oversized prefix")
		}
	}()
	newHeader(bytes.Repeat([]byte{'a'}, MaxPrefixLen+1))
}
