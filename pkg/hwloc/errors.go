package hwloc

import (
	"errors"
	"fmt"

	"github.com/numalab/hwloc-go/internal/bindings"
)

var (
	// ErrNotBuilt reports that the native hwloc bindings were not compiled
	// into the current binary.
	ErrNotBuilt = errors.New("hwloc: native bindings not built")

	// ErrTopologyClosed indicates the topology has already been closed.
	ErrTopologyClosed = errors.New("hwloc: topology closed")

	// ErrBitmapClosed indicates the bitmap has been closed or was never
	// allocated.
	ErrBitmapClosed = errors.New("hwloc: bitmap closed")

	// ErrInvalidParameter indicates an invalid parameter was provided.
	ErrInvalidParameter = errors.New("hwloc: invalid parameter")

	// ErrAllocFailed indicates the native library failed to allocate a
	// handle.
	ErrAllocFailed = errors.New("hwloc: native allocation failed")
)

// Error wraps an underlying error with the operation that produced it.
// Native return codes travel inside Err verbatim; no recovery or retry is
// attempted on behalf of the caller.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("hwloc.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// remapError converts bindings layer errors to public API errors.
func remapError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, bindings.ErrNotBuilt) {
		err = ErrNotBuilt
	}
	return &Error{Op: op, Err: err}
}
