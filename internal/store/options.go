package store

import (
	"github.com/AfshinJalili/artkv/internal/codec"
	"github.com/AfshinJalili/artkv/internal/keydir"
)

type Option func(*config)

type config struct {
	Index string

	MaxKeySize   int
	MaxValueSize int

	Compression          codec.CompressionType
	CompressionThreshold int

	Logger Logger
}

func defaultConfig() config {
	return config{
		Index:                keydir.KindNative,
		MaxKeySize:           1024,
		MaxValueSize:         1 << 20,
		Compression:          codec.Snappy,
		CompressionThreshold: 256,
		Logger:               noopLogger{},
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.Index == "" {
		cfg.Index = keydir.KindNative
	}
	if cfg.MaxKeySize <= 0 {
		cfg.MaxKeySize = 1024
	}
	if cfg.MaxValueSize <= 0 {
		cfg.MaxValueSize = 1 << 20
	}
	if cfg.CompressionThreshold <= 0 {
		cfg.CompressionThreshold = 256
	}
	if cfg.Compression != codec.None && cfg.Compression != codec.Snappy {
		cfg.Compression = codec.Snappy
	}
	if cfg.Logger == nil {
		cfg.Logger = noopLogger{}
	}
	return cfg
}

func WithIndex(v string) Option                      { return func(c *config) { c.Index = v } }
func WithMaxKeySize(v int) Option                    { return func(c *config) { c.MaxKeySize = v } }
func WithMaxValueSize(v int) Option                  { return func(c *config) { c.MaxValueSize = v } }
func WithCompression(v codec.CompressionType) Option { return func(c *config) { c.Compression = v } }
func WithCompressionThreshold(v int) Option          { return func(c *config) { c.CompressionThreshold = v } }
func WithLogger(v Logger) Option                     { return func(c *config) { c.Logger = v } }
