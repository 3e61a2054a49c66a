package vector

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/npillmayer/slotvec/maybe"
	"github.com/npillmayer/slotvec/result"
)

// Index is the integer width used for indices, counts and the unit size.
type Index interface {
	~uint8 | ~uint16
}

// SlotWidth is the number of slot-table bytes charged to the allocator per slot,
// the width of a pointer.
const SlotWidth = bits.UintSize / 8

// Vector is a vector of fixed-size byte blobs. The zero value is not initialized;
// call Init before use.
type Vector[I Index] struct {
	props
	table  []byte   // slot table storage, SlotWidth bytes per slot, drawn from the heap
	slots  [][]byte // element blocks; len(slots) is the capacity
	size   I
	unit   int
	status bool
}

// Small is a vector with 8-bit indices.
type Small = Vector[uint8]

// Wide is a vector with 16-bit indices.
type Wide = Vector[uint16]

// maxCount is the largest number representable by I.
func maxCount[I Index]() int {
	var zero I
	return int(^zero)
}

// --- Lifecycle -------------------------------------------------------------

// Init prepares v to hold elements of unit bytes each. unit has to be in the range of I,
// and v must not be initialized already. Init does not allocate; the slot table is created
// with the first Append.
func (v *Vector[I]) Init(unit int, opts ...Option) error {
	if v == nil {
		return fmt.Errorf("%w: vector is nil", ErrInvalidArg)
	}
	if unit <= 0 || unit > maxCount[I]() {
		return fmt.Errorf("%w: unit size %d not in 1…%d", ErrInvalidArg, unit, maxCount[I]())
	}
	if v.status {
		return fmt.Errorf("%w: vector already initialized", ErrInvalidState)
	}
	p := defaultProps[I]()
	for _, option := range opts {
		p = option.config(p)
	}
	if p.heap == nil {
		return fmt.Errorf("%w: heap is nil", ErrInvalidArg)
	}
	*v = Vector[I]{props: p, unit: unit, status: true}
	tracer().Debugf("vector initialized with unit=%d, max size=%d", unit, maxCount[I]())
	return nil
}

// Free releases every element block and the slot table, and leaves v uninitialized.
// v has to be initialized again before it may be reused.
//
// Free always completes. Errors reported by the allocator while releasing memory are
// collected and returned.
func (v *Vector[I]) Free() error {
	if v == nil {
		return fmt.Errorf("%w: vector is nil", ErrInvalidArg)
	}
	if !v.status {
		return fmt.Errorf("%w: vector not initialized", ErrInvalidState)
	}
	var errs []error
	for i := 0; i < int(v.size); i++ {
		if err := v.heap.Free(v.slots[i]); err != nil {
			errs = append(errs, fmt.Errorf("vector: free element %d: %w", i, err))
		}
	}
	if err := v.heap.Free(v.table); err != nil {
		errs = append(errs, fmt.Errorf("vector: free slot table: %w", err))
	}
	tracer().Debugf("vector freed, %d elements released", v.size)
	*v = Vector[I]{}
	return errors.Join(errs...)
}

// --- API -------------------------------------------------------------------

// Size returns the number of elements in v. A failure never looks like a size of 0:
// it is reported as an error result.
func (v *Vector[I]) Size() result.Result[int] {
	if v == nil {
		return result.Err[int](fmt.Errorf("%w: vector is nil", ErrInvalidArg))
	}
	if !v.status {
		return result.Err[int](fmt.Errorf("%w: vector not initialized", ErrInvalidState))
	}
	return result.Ok(int(v.size))
}

// Append copies unit bytes of elem into a new block at the end of v.
// If allocation fails, v is left as it was.
func (v *Vector[I]) Append(elem []byte) error {
	if err := v.check(elem); err != nil {
		return err
	}
	if len(elem) != v.unit {
		return fmt.Errorf("%w: got %d bytes, unit is %d", ErrInvalidSize, len(elem), v.unit)
	}
	if int(v.size) == maxCount[I]() {
		return fmt.Errorf("%w: size %d", ErrFull, v.size)
	}
	block, err := v.heap.Calloc(1, v.unit)
	if err != nil {
		return noMem(err)
	}
	if int(v.size) == v.Cap() {
		if err = v.resize(int(v.size) + 1); err != nil {
			if ferr := v.heap.Free(block); ferr != nil {
				tracer().Errorf("vector: cannot release element block after failed growth: %v", ferr)
			}
			return err
		}
	}
	copy(block, elem)
	v.slots[v.size] = block
	v.size++
	return nil
}

// Set overwrites the element at index with unit bytes of elem, in place.
func (v *Vector[I]) Set(index I, elem []byte) error {
	if err := v.check(elem); err != nil {
		return err
	}
	if index >= v.size {
		return outOfRange(int(index), int(v.size))
	}
	if len(elem) != v.unit {
		return fmt.Errorf("%w: got %d bytes, unit is %d", ErrInvalidSize, len(elem), v.unit)
	}
	copy(v.slots[index], elem)
	return nil
}

// At returns a view of the element at index. The view is borrowed: it aliases the
// element's block and must not be used after the next Append, Delete or Free.
func (v *Vector[I]) At(index I) ([]byte, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: vector is nil", ErrInvalidArg)
	}
	if !v.status {
		return nil, fmt.Errorf("%w: vector not initialized", ErrInvalidState)
	}
	if index >= v.size {
		return nil, outOfRange(int(index), int(v.size))
	}
	b := v.slots[index]
	return b[:v.unit:v.unit], nil
}

// Get is like At, but answers Nothing instead of an error.
func (v *Vector[I]) Get(index I) maybe.Maybe[[]byte] {
	b, err := v.At(index)
	return maybe.Of(b, err == nil)
}

// Delete removes the element at index, shifting all elements after it down by one.
// Afterwards the slot table is shrunk to the new size. If the allocator cannot provide
// the smaller table, the removal stands nevertheless and the spare slot is kept until a
// later Append fills it or a later reallocation succeeds.
func (v *Vector[I]) Delete(index I) error {
	if v == nil {
		return fmt.Errorf("%w: vector is nil", ErrInvalidArg)
	}
	if !v.status {
		return fmt.Errorf("%w: vector not initialized", ErrInvalidState)
	}
	if index >= v.size {
		return outOfRange(int(index), int(v.size))
	}
	i, n := int(index), int(v.size)
	if err := v.heap.Free(v.slots[i]); err != nil {
		return fmt.Errorf("vector: free element %d: %w", i, err)
	}
	copy(v.slots[i:n-1], v.slots[i+1:n])
	v.slots[n-1] = nil
	v.size--
	if err := v.resize(int(v.size)); err != nil {
		tracer().Errorf("vector: shrink to %d failed, keeping capacity %d: %v", v.size, v.Cap(), err)
	}
	return nil
}

// Unit returns the element size of v in bytes, or 0 if v is not initialized.
func (v *Vector[I]) Unit() int {
	if v == nil {
		return 0
	}
	return v.unit
}

// Cap returns the number of slots the slot table currently holds. Between operations
// it equals the size, except after a Delete whose shrink failed.
func (v *Vector[I]) Cap() int {
	if v == nil {
		return 0
	}
	return len(v.slots)
}

// Initialized is true between Init and Free.
func (v *Vector[I]) Initialized() bool {
	return v != nil && v.status
}

// --- Internals -------------------------------------------------------------

// check validates the preconditions shared by Append and Set.
func (v *Vector[I]) check(elem []byte) error {
	if v == nil || elem == nil {
		return fmt.Errorf("%w: vector or element is nil", ErrInvalidArg)
	}
	if !v.status {
		return fmt.Errorf("%w: vector not initialized", ErrInvalidState)
	}
	return nil
}

// resize reallocates the slot table to hold exactly n slots. On failure nothing changes.
func (v *Vector[I]) resize(n int) error {
	assertThat(n >= int(v.size), "slot table of %d cannot hold %d elements", n, v.size)
	if n == v.Cap() {
		return nil
	}
	table, err := v.heap.Realloc(v.table, n*SlotWidth)
	if err != nil {
		return noMem(err)
	}
	var slots [][]byte
	if n > 0 {
		slots = make([][]byte, n)
		copy(slots, v.slots)
	}
	tracer().Debugf("vector: slot table resized %d → %d", v.Cap(), n)
	v.table, v.slots = table, slots
	return nil
}
