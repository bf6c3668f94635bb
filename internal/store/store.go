// Package store wraps a keydir with the locking, limits, value compression
// and metrics a server needs. Reads run concurrently; writes are exclusive.
package store

import (
	"fmt"

	"github.com/VictoriaMetrics/metrics"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/AfshinJalili/artkv"
	"github.com/AfshinJalili/artkv/internal/codec"
	"github.com/AfshinJalili/artkv/internal/keydir"
)

type item struct {
	data  []byte
	codec codec.CompressionType
	size  int
}

type Store struct {
	mu  *xsync.RBMutex
	kd  keydir.Keydir[item]
	cfg config

	valueBytes *xsync.Counter
	compressed *xsync.Counter

	metrics *metrics.Set
	ops     map[string]*metrics.Counter
	misses  *metrics.Counter
}

var opNames = []string{"get", "set", "setnx", "del", "exists"}

func New(opts ...Option) (*Store, error) {
	cfg := applyOptions(opts)
	kd, err := keydir.New[item](cfg.Index, artkv.WithMaxKeySize(cfg.MaxKeySize))
	if err != nil {
		return nil, err
	}
	s := &Store{
		mu:         xsync.NewRBMutex(),
		kd:         kd,
		cfg:        cfg,
		valueBytes: xsync.NewCounter(),
		compressed: xsync.NewCounter(),
		metrics:    metrics.NewSet(),
		ops:        make(map[string]*metrics.Counter, len(opNames)),
	}
	for _, op := range opNames {
		s.ops[op] = s.metrics.NewCounter(fmt.Sprintf(`artkv_ops_total{op=%q}`, op))
	}
	s.misses = s.metrics.NewCounter("artkv_misses_total")
	s.metrics.NewGauge("artkv_keys", func() float64 { return float64(s.Len()) })
	s.metrics.NewGauge("artkv_value_bytes", func() float64 { return float64(s.valueBytes.Value()) })
	logf(cfg.Logger, "store: index=%s compression=%s threshold=%d", cfg.Index, cfg.Compression, cfg.CompressionThreshold)
	return s, nil
}

// Metrics returns the store's metric set for exposition.
func (s *Store) Metrics() *metrics.Set {
	return s.metrics
}

func (s *Store) checkKey(key []byte) error {
	if len(key) == 0 {
		return ErrEmptyKey
	}
	if len(key) > s.cfg.MaxKeySize {
		return ErrOversized
	}
	return nil
}

func (s *Store) encode(value []byte) (item, error) {
	if len(value) > s.cfg.MaxValueSize {
		return item{}, ErrOversized
	}
	c := codec.None
	if s.cfg.Compression == codec.Snappy && len(value) >= s.cfg.CompressionThreshold {
		c = codec.Snappy
	}
	data, err := codec.Encode(c, value)
	if err != nil {
		return item{}, err
	}
	// keep the raw form when compression does not pay off
	if c == codec.Snappy && len(data) >= len(value) {
		c = codec.None
		data = append([]byte(nil), value...)
	}
	return item{data: data, codec: c, size: len(value)}, nil
}

func (s *Store) decode(key []byte, it item) ([]byte, error) {
	out, err := codec.Decode(it.codec, it.data)
	if err != nil {
		logf(s.cfg.Logger, "store: decode %q: %v", key, err)
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return out, nil
}

func (s *Store) account(old item, had bool, cur item) {
	if had {
		s.valueBytes.Add(-int64(old.size))
		if old.codec != codec.None {
			s.compressed.Dec()
		}
	}
	s.valueBytes.Add(int64(cur.size))
	if cur.codec != codec.None {
		s.compressed.Inc()
	}
}

func (s *Store) Get(key []byte) ([]byte, error) {
	s.ops["get"].Inc()
	if err := s.checkKey(key); err != nil {
		return nil, err
	}
	tok := s.mu.RLock()
	it, ok := s.kd.Get(key)
	s.mu.RUnlock(tok)
	if !ok {
		s.misses.Inc()
		return nil, ErrKeyNotFound
	}
	return s.decode(key, it)
}

func (s *Store) Set(key, value []byte) error {
	s.ops["set"].Inc()
	if err := s.checkKey(key); err != nil {
		return err
	}
	it, err := s.encode(value)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	old, had := s.kd.Get(key)
	if err := s.kd.Set(key, it); err != nil {
		return err
	}
	s.account(old, had, it)
	return nil
}

// SetNX stores value only if key is absent and reports whether it did.
func (s *Store) SetNX(key, value []byte) (bool, error) {
	s.ops["setnx"].Inc()
	if err := s.checkKey(key); err != nil {
		return false, err
	}
	it, err := s.encode(value)
	if err != nil {
		return false, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, inserted, err := s.kd.Insert(key, it)
	if err != nil || !inserted {
		return false, err
	}
	s.account(item{}, false, it)
	return true, nil
}

func (s *Store) Delete(key []byte) error {
	s.ops["del"].Inc()
	if err := s.checkKey(key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.kd.Delete(key)
	if !ok {
		s.misses.Inc()
		return ErrKeyNotFound
	}
	s.valueBytes.Add(-int64(old.size))
	if old.codec != codec.None {
		s.compressed.Dec()
	}
	return nil
}

func (s *Store) Has(key []byte) bool {
	s.ops["exists"].Inc()
	if s.checkKey(key) != nil {
		return false
	}
	tok := s.mu.RLock()
	_, ok := s.kd.Get(key)
	s.mu.RUnlock(tok)
	return ok
}

func (s *Store) Len() int {
	tok := s.mu.RLock()
	defer s.mu.RUnlock(tok)
	return s.kd.Len()
}

func (s *Store) Info() Info {
	tok := s.mu.RLock()
	defer s.mu.RUnlock(tok)
	info := Info{
		Keys:        s.kd.Len(),
		Index:       s.cfg.Index,
		Compression: s.cfg.Compression.String(),
		ValueBytes:  s.valueBytes.Value(),
		Compressed:  s.compressed.Value(),
	}
	if st, ok := s.kd.(keydir.Statser); ok {
		stats := st.Stats()
		info.Tree = &stats
	}
	return info
}
