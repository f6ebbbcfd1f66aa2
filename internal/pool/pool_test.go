package pool

import (
	"sync"
	"testing"
)

type scratch struct {
	buf []int
}

func TestPoolRoundTrip(t *testing.T) {
	p := New(func() *scratch { return &scratch{buf: make([]int, 0, 8)} })

	s := p.Get()
	if s == nil {
		t.Fatal("Get returned nil")
	}
	s.buf = append(s.buf, 1, 2, 3)
	s.buf = s.buf[:0]
	p.Put(s)

	again := p.Get()
	if cap(again.buf) < 8 {
		t.Errorf("expected a pre-sized buffer, got cap %d", cap(again.buf))
	}
}

func TestPoolConcurrent(t *testing.T) {
	p := New(func() *scratch { return &scratch{} })

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				s := p.Get()
				s.buf = append(s.buf[:0], j)
				p.Put(s)
			}
		}()
	}
	wg.Wait()
}
