package artkv

import (
	"fmt"
	"testing"
)

func BenchmarkInsert(b *testing.B) {
	m := New[int]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key := []byte(fmt.Sprintf("key-%d", i))
		if _, err := m.Insert(key, i); err != nil {
			b.Fatalf("insert: %v", err)
		}
	}
}

func BenchmarkGet(b *testing.B) {
	m := New[int]()
	const n = 1 << 16
	keys := make([][]byte, n)
	for i := range keys {
		keys[i] = []byte(fmt.Sprintf("key-%d", i))
		if _, err := m.Insert(keys[i], i); err != nil {
			b.Fatalf("insert: %v", err)
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := m.Get(keys[i%n]); !ok {
			b.Fatalf("missing key %s", keys[i%n])
		}
	}
}

func BenchmarkDelete(b *testing.B) {
	m := New[int]()
	keys := make([][]byte, b.N)
	for i := range keys {
		keys[i] = []byte(fmt.Sprintf("key-%d", i))
		_, _ = m.Insert(keys[i], i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.Delete(keys[i]); err != nil {
			b.Fatalf("delete: %v", err)
		}
	}
}
