package hasher

import "testing"

func TestContentHash_Deterministic(t *testing.T) {
	a := ContentHash([]byte("hello"), 16)
	b := ContentHash([]byte("hello"), 16)
	if a != b {
		t.Fatalf("hash not deterministic: %q vs %q", a, b)
	}
	if len(a) != 16 {
		t.Errorf("length: got %d, want 16", len(a))
	}
}

func TestContentHash_Truncation(t *testing.T) {
	full := ContentHash([]byte("data"), 0)
	if len(full) != 16 {
		t.Fatalf("full hash length: got %d", len(full))
	}
	short := ContentHash([]byte("data"), 8)
	if short != full[:8] {
		t.Errorf("truncated hash is not a prefix: %q vs %q", short, full)
	}
}

func TestContentHash_Distinct(t *testing.T) {
	if ContentHash([]byte("a"), 16) == ContentHash([]byte("b"), 16) {
		t.Error("distinct inputs produced identical hashes")
	}
}
