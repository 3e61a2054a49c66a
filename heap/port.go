package heap

import (
	"fmt"
	"math"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// Config holds the limits of a Port heap.
type Config struct {
	// LimitBytes is the hard limit for live bytes. If 0, usage is tracked but not limited.
	LimitBytes int64
}

// Port is a byte-budgeted heap, modelled after the heap of an RTOS port:
// blocks are handed out while the budget lasts, and there is no native realloc.
// Resizing allocates a fresh block, copies and frees the old one, so for a moment
// both blocks count against the budget.
//
// Accounting is atomic, which allows several single-threaded owners to share one budget.
type Port struct {
	limit  int64
	budget *semaphore.Weighted // nil if unlimited
	used   atomic.Int64
	peak   atomic.Int64
	allocs atomic.Int64
	frees  atomic.Int64
}

var _ Allocator = (*Port)(nil)

// NewPort creates a heap with the limits of cfg.
func NewPort(cfg Config) *Port {
	p := &Port{limit: cfg.LimitBytes}
	if cfg.LimitBytes > 0 {
		p.budget = semaphore.NewWeighted(cfg.LimitBytes)
	}
	return p
}

// Calloc reserves count*size bytes from the budget and returns them zeroed.
// It never blocks: a request exceeding the remaining budget fails immediately.
func (p *Port) Calloc(count, size int) ([]byte, error) {
	n, err := blockSize(count, size)
	if err != nil || n == 0 {
		return nil, err
	}
	if !p.reserve(int64(n)) {
		tracer().Debugf("port heap: calloc of %d bytes refused, %d of %d in use", n, p.used.Load(), p.limit)
		return nil, fmt.Errorf("%w: cannot reserve %d bytes (%d of %d in use)", ErrExhausted, n, p.used.Load(), p.limit)
	}
	p.allocs.Add(1)
	return make([]byte, n), nil
}

// Realloc moves b into a fresh block of size bytes.
func (p *Port) Realloc(b []byte, size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative realloc size %d", ErrExhausted, size)
	}
	if size == 0 {
		return nil, p.Free(b)
	}
	r, err := p.Calloc(1, size)
	if err != nil {
		return nil, err
	}
	copy(r, b)
	if err = p.Free(b); err != nil {
		return nil, err
	}
	return r, nil
}

// Free returns b to the budget. Freeing nil is a no-op.
func (p *Port) Free(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	n := int64(len(b))
	if p.used.Load() < n {
		return fmt.Errorf("port heap: free of %d bytes exceeds %d bytes in use", n, p.used.Load())
	}
	if p.budget != nil {
		p.budget.Release(n)
	}
	p.used.Add(-n)
	p.frees.Add(1)
	return nil
}

// Stats reports the current accounting of p.
func (p *Port) Stats() Stats {
	return Stats{
		Used:   p.used.Load(),
		Peak:   p.peak.Load(),
		Limit:  p.limit,
		Allocs: p.allocs.Load(),
		Frees:  p.frees.Load(),
	}
}

func (p *Port) reserve(n int64) bool {
	if p.budget != nil {
		if !p.budget.TryAcquire(n) {
			return false
		}
	} else if p.used.Load() > math.MaxInt64-n {
		return false
	}
	used := p.used.Add(n)
	for {
		peak := p.peak.Load()
		if used <= peak || p.peak.CompareAndSwap(peak, used) {
			return true
		}
	}
}
