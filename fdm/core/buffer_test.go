package core

import "testing"

func TestEnsureLenReuse(t *testing.T) {
	buf := make([]float64, 4, 8)

	out := EnsureLen(buf, 6)
	if len(out) != 6 {
		t.Fatalf("len = %d, want 6", len(out))
	}

	if cap(out) != cap(buf) {
		t.Fatalf("cap = %d, want %d (reused)", cap(out), cap(buf))
	}

	if got := EnsureLen(buf, 0); len(got) != 0 {
		t.Fatalf("EnsureLen(buf, 0) has len %d, want 0", len(got))
	}
}

func TestEnsureLenGrows(t *testing.T) {
	out := EnsureLen(make([]float64, 2), 5)
	if len(out) != 5 {
		t.Fatalf("len = %d, want 5", len(out))
	}
}

func TestFill(t *testing.T) {
	buf := []float64{1, 2, 3}
	Fill(buf, 0.5)

	for i, v := range buf {
		if v != 0.5 {
			t.Fatalf("buf[%d] = %v, want 0.5", i, v)
		}
	}

	got := Filled(2, 2)
	if len(got) != 2 || got[0] != 2 || got[1] != 2 {
		t.Fatalf("Filled(2, 2) = %v, want [2 2]", got)
	}
}
