package vector

import (
	"github.com/npillmayer/slotvec/heap"
)

type props struct {
	heap heap.Allocator
}

// Option is a type to help initializing vectors.
type Option struct {
	config func(props) props
}

// WithHeap sets the allocator a vector draws its slot table and element blocks from.
// The allocator must outlive the vector.
//
// Use it like this:
//
//     budget := heap.NewPort(heap.Config{LimitBytes: 2048})
//     var v vector.Small
//     err := v.Init(8, vector.WithHeap(budget))
//
func WithHeap(h heap.Allocator) Option {
	return Option{config: func(p props) props {
		p.heap = h
		return p
	}}
}

// defaultProps selects the allocator by index width: narrow vectors sit on a port-style
// heap without native realloc, wide ones on the Go runtime heap.
func defaultProps[I Index]() props {
	if maxCount[I]() <= 0xff {
		return props{heap: heap.NewPort(heap.Config{})}
	}
	return props{heap: heap.Runtime{}}
}
