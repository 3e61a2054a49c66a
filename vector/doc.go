/*
Package vector implements a small mutable vector for memory-constrained runtimes.

Every element is an opaque blob of a fixed number of bytes, the vector's unit, which is
copied by value into a block of its own. The table of slots is kept exactly as long as the
number of elements: every append which needs room and every delete reallocates it to the
new length. This trades throughput for the smallest possible peak footprint and is meant for
short, rarely mutated collections. Do not expect amortized growth.

The vector comes in two widths, which bound the number of elements and the unit size:

	Small   8-bit indices, up to 255 elements; default allocator is an unlimited heap.Port
	Wide   16-bit indices, up to 65535 elements; default allocator is heap.Runtime

A vector record is owned by the client and usable after Init:

	var v vector.Small
	if err := v.Init(4); err != nil { … }
	defer v.Free()
	err := v.Append([]byte{1, 0, 0, 0})

Vectors are not safe for concurrent use; clients sharing one must serialize all access.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package vector

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'slotvec.vector'.
func tracer() tracing.Trace {
	return tracing.Select("slotvec.vector")
}
