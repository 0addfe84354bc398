package canvas

import (
	"errors"

	cimage "github.com/gogpu/canvas/internal/image"
)

// Sentinel errors for canvas operations.
var (
	// ErrInvalidArgument is returned for non-positive sizes, unparsable
	// colors and other malformed inputs.
	ErrInvalidArgument = errors.New("canvas: invalid argument")

	// ErrAllocation is returned when the pixel buffer cannot be allocated.
	ErrAllocation = errors.New("canvas: pixel buffer allocation failed")

	// ErrNonRootSave is returned when Save or Encode is called on a canvas
	// obtained by splitting. No I/O is performed.
	ErrNonRootSave = errors.New("canvas: save is only allowed on the root canvas")

	// ErrUnsupportedFormat is returned when the output format cannot be
	// derived from the file extension.
	ErrUnsupportedFormat = cimage.ErrUnsupportedFormat
)

// SaveError records a failed write together with the destination path.
// The in-memory buffer is never modified by a failed save.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return "canvas: save " + e.Path + ": " + e.Err.Error()
}

func (e *SaveError) Unwrap() error { return e.Err }
