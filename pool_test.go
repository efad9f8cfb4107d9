package sampling

import "testing"

func TestPoolGetReturnsResetSampler(t *testing.T) {
	p := NewPool[float64, float64]()

	s := p.Get(8)
	if s.Capacity() != 8 {
		t.Fatalf("Capacity() = %d, want 8", s.Capacity())
	}
	if s.Len() != 8 {
		t.Fatalf("Len() = %d, want 8", s.Len())
	}
	for i, v := range s.Samples() {
		if v != 0 {
			t.Fatalf("Samples()[%d] = %v, want 0", i, v)
		}
	}
	if s.ProcessCount() != 0 {
		t.Fatalf("ProcessCount() = %d, want 0", s.ProcessCount())
	}

	p.Put(s)
}

func TestPoolReuseIsReset(t *testing.T) {
	p := NewPool[float64, float64]()

	// Get, dirty the window and the registry, return.
	s := p.Get(4)
	s.PushBack(42)
	s.SetProcess(1, func() float64 { return 1 })
	p.Put(s)

	// Get again — must come back reset regardless of reuse.
	s2 := p.Get(4)
	for i, v := range s2.Samples() {
		if v != 0 {
			t.Fatalf("reused Samples()[%d] = %v, want 0", i, v)
		}
	}
	if s2.ProcessCount() != 0 {
		t.Fatalf("reused ProcessCount() = %d, want 0", s2.ProcessCount())
	}

	p.Put(s2)
}

func TestPoolGetResizes(t *testing.T) {
	p := NewPool[int, int]()

	s := p.Get(2)
	p.Put(s)

	s2 := p.Get(5)
	if s2.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", s2.Len())
	}

	p.Put(s2)
}

func TestPoolPutNilSafe(_ *testing.T) {
	p := NewPool[int, int]()
	p.Put(nil) // must not panic
}
