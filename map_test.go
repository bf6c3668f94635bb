package artkv

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
	"testing/quick"

	"github.com/AfshinJalili/artkv/internal/testutil"
)

func TestInsertThenLookup(t *testing.T) {
	m := New[string]()
	ref, err := m.Insert([]byte("car"), "red")
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	if *ref != "red" {
		t.Fatalf("expected reference to red, got %q", *ref)
	}
	got, ok := m.Lookup([]byte("car"))
	if !ok || *got != "red" {
		t.Fatalf("lookup: expected red")
	}
	if v, ok := m.Get([]byte("car")); !ok || v != "red" {
		t.Fatalf("get: expected red, got %q", v)
	}
	if !m.Has([]byte("car")) || m.Has([]byte("ca")) {
		t.Fatalf("has: unexpected result")
	}
}

func TestInsertOccupied(t *testing.T) {
	m := New[int]()
	if _, err := m.Insert([]byte("k"), 1); err != nil {
		t.Fatalf("insert: %v", err)
	}
	ref, err := m.Insert([]byte("k"), 2)
	if ref != nil {
		t.Fatalf("expected nil reference on collision")
	}
	if !errors.Is(err, ErrKeyExists) {
		t.Fatalf("expected ErrKeyExists, got %v", err)
	}
	var occupied *OccupiedError[int]
	if !errors.As(err, &occupied) {
		t.Fatalf("expected *OccupiedError, got %T", err)
	}
	if *occupied.Existing != 1 || occupied.Value != 2 {
		t.Fatalf("expected existing 1 and unused 2, got %d and %d", *occupied.Existing, occupied.Value)
	}
	if v, _ := m.Get([]byte("k")); v != 1 {
		t.Fatalf("collision must not overwrite, got %d", v)
	}
	// the caller may overwrite through the returned reference
	*occupied.Existing = occupied.Value
	if v, _ := m.Get([]byte("k")); v != 2 {
		t.Fatalf("expected overwrite through reference, got %d", v)
	}
}

func TestSetOverwrites(t *testing.T) {
	m := New[int]()
	if _, err := m.Set([]byte("k"), 1); err != nil {
		t.Fatalf("set: %v", err)
	}
	ref, err := m.Set([]byte("k"), 5)
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	if *ref != 5 || m.Len() != 1 {
		t.Fatalf("expected single key with 5, got %d (len %d)", *ref, m.Len())
	}
}

func TestDelete(t *testing.T) {
	m := New[int]()
	_, _ = m.Insert([]byte("aa"), 1)
	_, _ = m.Insert([]byte("ab"), 2)
	v, err := m.Delete([]byte("aa"))
	if err != nil || v != 1 {
		t.Fatalf("delete: expected 1, got %d %v", v, err)
	}
	if _, err := m.Delete([]byte("aa")); !errors.Is(err, ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
	if v, ok := m.Get([]byte("ab")); !ok || v != 2 {
		t.Fatalf("expected ab to survive collapse, got %d %v", v, ok)
	}
}

func TestOversizedKeys(t *testing.T) {
	m := New[int](WithMaxKeySize(4))
	if _, err := m.Insert([]byte("abcde"), 1); !errors.Is(err, ErrOversized) {
		t.Fatalf("expected ErrOversized, got %v", err)
	}
	if _, err := m.Set([]byte("abcde"), 1); !errors.Is(err, ErrOversized) {
		t.Fatalf("set: expected ErrOversized, got %v", err)
	}
	if _, err := m.Insert([]byte("abcd"), 1); err != nil {
		t.Fatalf("insert at limit: %v", err)
	}

	big := New[int](WithMaxKeySize(1 << 20))
	if _, err := big.Insert(testutil.BytesRepeat('x', 1<<13), 1); !errors.Is(err, ErrOversized) {
		t.Fatalf("expected node limit to reject key, got %v", err)
	}
	if big.Len() != 0 {
		t.Fatalf("expected empty map, got %d", big.Len())
	}
}

func TestBinaryKeys(t *testing.T) {
	m := New[int]()
	keys := [][]byte{{}, {0x00}, {0x00, 0x00}, {0x01}, {0x01, 0x00}, {0xff}, {0x00, 0x01, 0x02}}
	for i, k := range keys {
		if _, err := m.Insert(k, i); err != nil {
			t.Fatalf("insert %x: %v", k, err)
		}
	}
	for i, k := range keys {
		if v, ok := m.Get(k); !ok || v != i {
			t.Fatalf("get %x: expected %d, got %d %v", k, i, v, ok)
		}
	}
}

func TestStatsAndDump(t *testing.T) {
	m := New[int]()
	_, _ = m.Insert([]byte("car"), 1)
	_, _ = m.Insert([]byte("cart"), 2)
	s := m.Stats()
	if s.Leaves != 2 || s.Node4s != 2 {
		t.Fatalf("unexpected stats %+v", s)
	}
	var buf bytes.Buffer
	if err := m.Dump(&buf); err != nil {
		t.Fatalf("dump: %v", err)
	}
	if !bytes.Contains(buf.Bytes(), []byte(`"ar"`)) {
		t.Fatalf("expected shared prefix in dump:\n%s", buf.String())
	}
}

func TestPropertyMatchesModel(t *testing.T) {
	var lastErr error
	f := func(seed uint64) bool {
		r := rand.New(rand.NewSource(int64(seed)))
		m := New[[]byte]()
		model := make(map[string][]byte)
		for i := 0; i < 200; i++ {
			key := testutil.RandomKey(r, 4, testutil.KeyAlphabet)
			switch r.Intn(4) {
			case 0: // Insert
				val := []byte{byte(i)}
				_, err := m.Insert(key, val)
				if _, ok := model[string(key)]; ok {
					if !errors.Is(err, ErrKeyExists) {
						lastErr = err
						return false
					}
					continue
				}
				if err != nil {
					lastErr = err
					return false
				}
				model[string(key)] = val
			case 1: // Set
				val := []byte{byte(i), 1}
				if _, err := m.Set(key, val); err != nil {
					lastErr = err
					return false
				}
				model[string(key)] = val
			case 2: // Delete
				_, err := m.Delete(key)
				if _, ok := model[string(key)]; ok != (err == nil) {
					lastErr = err
					return false
				}
				delete(model, string(key))
			case 3: // Get
				v, ok := m.Get(key)
				want, exists := model[string(key)]
				if ok != exists || !bytes.Equal(v, want) {
					return false
				}
			}
		}
		return m.Len() == len(model)
	}
	cfg := &quick.Config{
		MaxCount: 50,
		Rand:     rand.New(rand.NewSource(1)),
	}
	if err := quick.Check(f, cfg); err != nil {
		if lastErr != nil {
			t.Fatalf("property failed: %v", lastErr)
		}
		t.Fatalf("property failed: %v", err)
	}
}
