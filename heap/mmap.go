package heap

import (
	"fmt"

	"modernc.org/memory"
)

// Mmap is a C-style heap living outside of the Go garbage collector, with native
// calloc, realloc and free. Blocks handed out by Mmap must not hold Go pointers.
//
// An Mmap heap is not safe for concurrent use. Call Close to unmap all of its memory.
type Mmap struct {
	mem    memory.Allocator
	used   int64
	peak   int64
	allocs int64
	frees  int64
}

var _ Allocator = (*Mmap)(nil)

// NewMmap creates an empty off-heap allocator.
func NewMmap() *Mmap {
	return &Mmap{}
}

func (m *Mmap) Calloc(count, size int) ([]byte, error) {
	n, err := blockSize(count, size)
	if err != nil || n == 0 {
		return nil, err
	}
	b, err := m.mem.Calloc(n)
	if err != nil {
		return nil, fmt.Errorf("%w: calloc %d bytes: %v", ErrExhausted, n, err)
	}
	m.account(len(b), 0)
	return b, nil
}

func (m *Mmap) Realloc(b []byte, size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative realloc size %d", ErrExhausted, size)
	}
	old := len(b)
	r, err := m.mem.Realloc(b, size)
	if err != nil {
		return nil, fmt.Errorf("%w: realloc %d to %d bytes: %v", ErrExhausted, old, size, err)
	}
	m.account(len(r), old)
	return r, nil
}

func (m *Mmap) Free(b []byte) error {
	if len(b) == 0 {
		return nil
	}
	if err := m.mem.Free(b); err != nil {
		return err
	}
	m.account(0, len(b))
	return nil
}

// Close releases all memory held by m, including blocks not yet freed.
func (m *Mmap) Close() error {
	if m.used > 0 {
		tracer().Infof("mmap heap: closing with %d bytes still in use", m.used)
	}
	m.used = 0
	return m.mem.Close()
}

// Stats reports the current accounting of m.
func (m *Mmap) Stats() Stats {
	return Stats{Used: m.used, Peak: m.peak, Allocs: m.allocs, Frees: m.frees}
}

func (m *Mmap) account(acquired, released int) {
	if acquired > 0 {
		m.allocs++
	}
	if released > 0 {
		m.frees++
	}
	m.used += int64(acquired - released)
	if m.used > m.peak {
		m.peak = m.used
	}
}
