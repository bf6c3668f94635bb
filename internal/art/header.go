package art

import "fmt"

// MaxPrefixLen bounds the compressed segment a single node may own. Encoded
// keys longer than this cannot be stored.
const MaxPrefixLen = 4096

// header is the compressed key segment shared by everything below a node.
type header struct {
	prefix []byte
}

func newHeader(b []byte) header {
	if len(b) > MaxPrefixLen {
		panic(fmt.Sprintf("art: prefix of %d bytes exceeds max %d", len(b), MaxPrefixLen))
	}
	if len(b) == 0 {
		return header{}
	}
	return header{prefix: append([]byte(nil), b...)}
}

func (h header) Len() int { return len(h.prefix) }

func (h header) bytes() []byte { return h.prefix }

// match returns how many leading bytes of key agree with the prefix.
func (h header) match(key []byte) int {
	n := len(h.prefix)
	if len(key) < n {
		n = len(key)
	}
	for i := 0; i < n; i++ {
		if h.prefix[i] != key[i] {
			return i
		}
	}
	return n
}

// truncate keeps the first n bytes and hands the rest to the caller.
func (h *header) truncate(n int) []byte {
	if n < 0 || n > len(h.prefix) {
		panic(fmt.Sprintf("art: truncate %d of %d byte prefix", n, len(h.prefix)))
	}
	rest := append([]byte(nil), h.prefix[n:]...)
	h.prefix = h.prefix[:n:n]
	return rest
}
