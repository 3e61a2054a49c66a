package heap

import (
	"errors"
	"fmt"
)

// ErrExhausted is wrapped by every allocation failure.
var ErrExhausted = errors.New("heap exhausted")

// Allocator is the contract between a vector and the memory it lives in.
//
// Calloc returns count*size zeroed bytes. Realloc resizes b to size bytes, preserving
// the common prefix; Realloc(nil, n) allocates and Realloc(b, 0) frees. Free releases b.
// On failure the input block is left untouched and still owned by the caller.
type Allocator interface {
	Calloc(count, size int) ([]byte, error)
	Realloc(b []byte, size int) ([]byte, error)
	Free(b []byte) error
}

// Runtime allocates from the Go heap. It never reports exhaustion; a Go program
// running out of memory does not get the chance to recover anyway.
type Runtime struct{}

var _ Allocator = Runtime{}

func (Runtime) Calloc(count, size int) ([]byte, error) {
	n, err := blockSize(count, size)
	if err != nil || n == 0 {
		return nil, err
	}
	return make([]byte, n), nil
}

func (Runtime) Realloc(b []byte, size int) ([]byte, error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: negative realloc size %d", ErrExhausted, size)
	}
	if size == 0 {
		return nil, nil
	}
	if size == len(b) {
		return b, nil
	}
	r := make([]byte, size) // shrinking re-slices would keep the old footprint alive
	copy(r, b)
	return r, nil
}

func (Runtime) Free([]byte) error {
	return nil
}

// blockSize checks a calloc request for overflow of count*size.
func blockSize(count, size int) (int, error) {
	if count < 0 || size < 0 {
		return 0, fmt.Errorf("%w: invalid request %d×%d", ErrExhausted, count, size)
	}
	if count == 0 || size == 0 {
		return 0, nil
	}
	n := count * size
	if n/count != size {
		return 0, fmt.Errorf("%w: request %d×%d overflows", ErrExhausted, count, size)
	}
	return n, nil
}
