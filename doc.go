/*
Package slotvec is the root of a small vector library for memory-constrained runtimes.

A slotvec vector holds elements of a fixed size, each copied into a block of its own, and
keeps its slot table exactly as long as the number of elements. It never over-allocates,
which makes the peak footprint of a collection predictable at the cost of one reallocation
per structural change.

Sub-packages:

	vector   the vector of fixed-size byte blobs, in 8-bit (Small) and 16-bit (Wide) index widths
	boxed    the same vector with a compile-time element type
	heap     allocators a vector may draw its memory from
	result   a value-or-error result, used for size queries
	maybe    an optional value, used for reads which may come up empty

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package slotvec
