/*
Package boxed implements the typed counterpart of package vector.

Where a vector.Vector stores opaque blobs of a unit size fixed at runtime, a boxed.Vector[T]
lets the compiler fix the element type. Each element is copied by value into a box of its
own, and the table of boxes is kept exactly as long as the number of elements, just as for
package vector. Lifecycle, operations and errors are the same; errors are the sentinels of
package vector.

Boxes are owned by the Go runtime, so there is no allocator to configure and no allocation
failure to report.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package boxed

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'slotvec.boxed'.
func tracer() tracing.Trace {
	return tracing.Select("slotvec.boxed")
}
