/*
Package heap provides the allocator a vector draws its memory from.

A vector never calls into the Go runtime for its slot table or element blocks directly.
It asks an Allocator, which hands out zeroed blocks, resizes them and takes them back.
Exhaustion is reported as an error wrapping ErrExhausted, never as a panic, so a caller
on a small device may decide what to give up.

Three allocators are provided:

	Runtime   the Go heap, unbounded
	Port      a byte-budgeted heap in the manner of an RTOS port heap (no native realloc)
	Mmap      a C-style heap outside of the Go GC, backed by modernc.org/memory

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package heap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'slotvec.heap'.
func tracer() tracing.Trace {
	return tracing.Select("slotvec.heap")
}
