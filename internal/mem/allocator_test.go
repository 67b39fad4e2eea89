package mem

import (
	"errors"
	"sync"
	"testing"
)

func TestHeapLimit(t *testing.T) {
	h := NewHeap(100)

	if err := h.Reserve(60); err != nil {
		t.Fatalf("Reserve(60): %v", err)
	}
	if err := h.Reserve(50); !errors.Is(err, ErrOutOfMemory) {
		t.Fatalf("Reserve(50) = %v, want ErrOutOfMemory", err)
	}
	if h.InUse() != 60 {
		t.Errorf("InUse = %d, want 60 (failed reservation must roll back)", h.InUse())
	}
	if h.Failures() != 1 {
		t.Errorf("Failures = %d, want 1", h.Failures())
	}

	h.Release(60)
	if h.InUse() != 0 {
		t.Errorf("InUse = %d after release", h.InUse())
	}
	if h.Peak() != 60 {
		t.Errorf("Peak = %d, want 60", h.Peak())
	}
}

func TestHeapUnlimited(t *testing.T) {
	h := NewHeap(0)
	if err := h.Reserve(1 << 40); err != nil {
		t.Fatalf("unlimited heap refused: %v", err)
	}
}

func TestHeapConcurrent(t *testing.T) {
	h := NewHeap(0)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if err := h.Reserve(8); err != nil {
					t.Error(err)
					return
				}
				h.Release(8)
			}
		}()
	}
	wg.Wait()
	if h.InUse() != 0 {
		t.Errorf("InUse = %d, want 0", h.InUse())
	}
}

func TestAlloc(t *testing.T) {
	h := NewHeap(0)

	s, release, err := Alloc[uint64](h, 4)
	if err != nil {
		t.Fatalf("Alloc: %v", err)
	}
	if len(s) != 4 || h.InUse() != 32 {
		t.Errorf("len=%d inUse=%d, want 4 and 32", len(s), h.InUse())
	}
	release()
	release()
	if h.InUse() != 0 {
		t.Errorf("double release: InUse = %d", h.InUse())
	}

	s, release, err = Alloc[uint64](h, 0)
	if err != nil || s != nil || release == nil {
		t.Errorf("zero alloc: s=%v err=%v", s, err)
	}
}

func TestAllocOutOfMemory(t *testing.T) {
	h := NewHeap(16)
	_, release, err := Alloc[uint64](h, 3)
	if !errors.Is(err, ErrOutOfMemory) {
		t.Fatalf("got %v, want ErrOutOfMemory", err)
	}
	release()
	if h.InUse() != 0 {
		t.Errorf("InUse = %d", h.InUse())
	}
}
