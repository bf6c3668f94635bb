package testutil

import (
	"bytes"
	"fmt"
	"math/rand"
)

// KeyAlphabet is small so random keys collide and share prefixes often. It
// includes the bytes the key codec has to escape.
const KeyAlphabet = "ab\x00\x01c"

// RandomKey returns a key of 0..maxLen bytes drawn from alphabet.
func RandomKey(r *rand.Rand, maxLen int, alphabet string) []byte {
	n := r.Intn(maxLen + 1)
	key := make([]byte, n)
	for i := range key {
		key[i] = alphabet[r.Intn(len(alphabet))]
	}
	return key
}

func RandomKeys(r *rand.Rand, n, maxLen int, alphabet string) [][]byte {
	keys := make([][]byte, n)
	for i := range keys {
		keys[i] = RandomKey(r, maxLen, alphabet)
	}
	return keys
}

// SequentialKeys returns prefix-000000, prefix-000001, ...
func SequentialKeys(prefix string, n int) [][]byte {
	keys := make([][]byte, n)
	for i := range keys {
		keys[i] = []byte(fmt.Sprintf("%s-%06d", prefix, i))
	}
	return keys
}

// FanoutKeys returns prefix+b for each byte b in [from, to], forcing a single
// node with to-from+1 children.
func FanoutKeys(prefix string, from, to byte) [][]byte {
	keys := make([][]byte, 0, int(to)-int(from)+1)
	for b := int(from); b <= int(to); b++ {
		keys = append(keys, append([]byte(prefix), byte(b)))
	}
	return keys
}

func BytesRepeat(b byte, n int) []byte {
	return bytes.Repeat([]byte{b}, n)
}
