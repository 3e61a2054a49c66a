package vector

import (
	"errors"
	"fmt"
)

// Errors reported by vector operations. Operations wrap them with context;
// test for them with errors.Is.
var (
	ErrInvalidArg   = errors.New("vector: invalid argument")
	ErrInvalidState = errors.New("vector: invalid state")
	ErrOutOfRange   = errors.New("vector: index out of range")
	ErrNoMem        = errors.New("vector: out of memory")
	ErrInvalidSize  = errors.New("vector: element size does not match unit")
	// ErrFull is reported when the index width cannot address another element.
	ErrFull = fmt.Errorf("%w: index space exhausted", ErrNoMem)
)

func noMem(err error) error {
	return fmt.Errorf("%w: %w", ErrNoMem, err)
}

func outOfRange(index, size int) error {
	return fmt.Errorf("%w: %d with size %d", ErrOutOfRange, index, size)
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("vector: "+msg, msgargs...)
		panic(msg)
	}
}
