package artkv

const defaultMaxKeySize = 1024

type Option func(*config)

type config struct {
	MaxKeySize int
}

func defaultConfig() config {
	return config{
		MaxKeySize: defaultMaxKeySize,
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.MaxKeySize <= 0 {
		cfg.MaxKeySize = defaultMaxKeySize
	}
	return cfg
}

// WithMaxKeySize limits keys to v bytes. Keys whose encoding does not fit in a
// tree node are rejected regardless of this limit.
func WithMaxKeySize(v int) Option { return func(c *config) { c.MaxKeySize = v } }
