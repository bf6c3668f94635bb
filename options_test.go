package artkv

import "testing"

func TestApplyOptionsDefaults(t *testing.T) {
	cfg := applyOptions(nil)
	if cfg.MaxKeySize != defaultMaxKeySize {
		t.Fatalf("expected default max key size %d, got %d", defaultMaxKeySize, cfg.MaxKeySize)
	}
}

func TestApplyOptionsOverridesAndClamps(t *testing.T) {
	if cfg := applyOptions([]Option{WithMaxKeySize(16)}); cfg.MaxKeySize != 16 {
		t.Fatalf("expected 16, got %d", cfg.MaxKeySize)
	}
	if cfg := applyOptions([]Option{nil, WithMaxKeySize(-1)}); cfg.MaxKeySize != defaultMaxKeySize {
		t.Fatalf("expected clamp to default, got %d", cfg.MaxKeySize)
	}
}
