package core

import "testing"

func TestPoolGetReturnsZeroed(t *testing.T) {
	p := NewPool()

	v := p.Get(8)
	if len(*v) != 8 {
		t.Fatalf("len = %d, want 8", len(*v))
	}

	for i, x := range *v {
		if x != 0 {
			t.Fatalf("Get(8)[%d] = %v, want 0", i, x)
		}
	}

	p.Put(v)
}

func TestPoolReuseIsZeroed(t *testing.T) {
	p := NewPool()

	v := p.Get(8)
	Fill(*v, 3)
	p.Put(v)

	w := p.Get(4)
	if len(*w) != 4 {
		t.Fatalf("len = %d, want 4", len(*w))
	}

	for i, x := range *w {
		if x != 0 {
			t.Fatalf("reused Get(4)[%d] = %v, want 0", i, x)
		}
	}

	p.Put(w)
}

func TestPoolPutNilSafe(_ *testing.T) {
	p := NewPool()
	p.Put(nil)
}
