package boxed

import (
	"fmt"

	"github.com/npillmayer/slotvec/maybe"
	"github.com/npillmayer/slotvec/result"
	"github.com/npillmayer/slotvec/vector"
	tp "github.com/xlab/treeprint"
)

// Vector is a vector of boxed values of type T. The zero value is not initialized;
// call Init before use.
type Vector[T any] struct {
	slots  []*T
	status bool
}

// Init prepares v for use. v must not be initialized already.
func (v *Vector[T]) Init() error {
	if v == nil {
		return fmt.Errorf("%w: vector is nil", vector.ErrInvalidArg)
	}
	if v.status {
		return fmt.Errorf("%w: vector already initialized", vector.ErrInvalidState)
	}
	*v = Vector[T]{status: true}
	return nil
}

// Free drops all boxes and leaves v uninitialized.
func (v *Vector[T]) Free() error {
	if err := v.usable(); err != nil {
		return err
	}
	tracer().Debugf("boxed vector freed, %d elements released", len(v.slots))
	*v = Vector[T]{}
	return nil
}

// Size returns the number of elements in v.
func (v *Vector[T]) Size() result.Result[int] {
	if err := v.usable(); err != nil {
		return result.Err[int](err)
	}
	return result.Ok(len(v.slots))
}

// Append copies x into a new box at the end of v.
func (v *Vector[T]) Append(x T) error {
	if err := v.usable(); err != nil {
		return err
	}
	box := new(T)
	*box = x
	v.resize(len(v.slots) + 1)
	v.slots[len(v.slots)-1] = box
	return nil
}

// Set copies x over the element at index i, in place.
func (v *Vector[T]) Set(i int, x T) error {
	if err := v.usable(); err != nil {
		return err
	}
	if i < 0 || i >= len(v.slots) {
		return fmt.Errorf("%w: %d with size %d", vector.ErrOutOfRange, i, len(v.slots))
	}
	*v.slots[i] = x
	return nil
}

// At returns the box of element i. It is borrowed and must not be used after
// the element has been deleted.
func (v *Vector[T]) At(i int) (*T, error) {
	if err := v.usable(); err != nil {
		return nil, err
	}
	if i < 0 || i >= len(v.slots) {
		return nil, fmt.Errorf("%w: %d with size %d", vector.ErrOutOfRange, i, len(v.slots))
	}
	return v.slots[i], nil
}

// Get is like At, but answers Nothing instead of an error.
func (v *Vector[T]) Get(i int) maybe.Maybe[*T] {
	x, err := v.At(i)
	return maybe.Of(x, err == nil)
}

// Delete removes element i, shifting all elements after it down by one.
func (v *Vector[T]) Delete(i int) error {
	if err := v.usable(); err != nil {
		return err
	}
	n := len(v.slots)
	if i < 0 || i >= n {
		return fmt.Errorf("%w: %d with size %d", vector.ErrOutOfRange, i, n)
	}
	copy(v.slots[i:], v.slots[i+1:])
	v.slots[n-1] = nil
	v.resize(n - 1)
	return nil
}

// Cap returns the length of the slot table, which always equals the size.
func (v *Vector[T]) Cap() int {
	if v == nil {
		return 0
	}
	return cap(v.slots)
}

func (v *Vector[T]) String() string {
	if v == nil || !v.status {
		return "Vector(uninitialized)"
	}
	printer := tp.New()
	for i, box := range v.slots {
		printer.AddMetaNode(i, fmt.Sprintf("%v", *box))
	}
	return fmt.Sprintf("Vector(size=%d)\n", len(v.slots)) + printer.String()
}

func (v *Vector[T]) usable() error {
	if v == nil {
		return fmt.Errorf("%w: vector is nil", vector.ErrInvalidArg)
	}
	if !v.status {
		return fmt.Errorf("%w: vector not initialized", vector.ErrInvalidState)
	}
	return nil
}

// resize moves the boxes into a table of exactly n slots.
func (v *Vector[T]) resize(n int) {
	var slots []*T
	if n > 0 {
		slots = make([]*T, n)
		copy(slots, v.slots)
	}
	v.slots = slots
}
