package canvas

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// Canvas is a handle to a rectangular region of a shared Backend.
//
// The canvas returned by New is the root: its region covers the whole
// buffer and it is the only handle allowed to Save. Every split returns two
// new, non-root handles sharing the same Backend; the canvas that was split
// stays valid and drawable. Splitting the same canvas twice yields handles
// whose regions may overlap; keeping draws apart in that case is up to the
// caller.
//
// Canvases are not safe for concurrent use. A Backend and every Canvas
// sharing it must stay on one goroutine at a time.
type Canvas struct {
	backend *Backend
	region  image.Rectangle
	root    bool
}

// New creates a root canvas backed by a freshly allocated buffer filled with
// the background color (DefaultBackground unless overridden).
//
// It returns ErrInvalidArgument for non-positive sizes or an unparsable
// background, and ErrAllocation when the buffer cannot be allocated.
func New(opts ...Option) (*Canvas, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if o.width <= 0 || o.height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d must be positive", ErrInvalidArgument, o.width, o.height)
	}

	bg, err := o.resolveBackground()
	if err != nil {
		return nil, err
	}

	b, err := newBackend(o.width, o.height, o)
	if err != nil {
		return nil, err
	}
	b.surface.Fill(b.surface.Rect, bg)

	return &Canvas{
		backend: b,
		region:  b.surface.Rect,
		root:    true,
	}, nil
}

// resolveBackground picks the fill color from the options.
func (o *options) resolveBackground() (color.RGBA, error) {
	switch {
	case o.backgroundColor != nil:
		return opaque(o.backgroundColor), nil
	case o.background != "":
		return ParseColor(o.background)
	default:
		return DefaultBackground(), nil
	}
}

// derive returns a non-root canvas for r on the same backend.
func (c *Canvas) derive(r image.Rectangle) *Canvas {
	return &Canvas{backend: c.backend, region: r}
}

// SplitHorizontally splits the region into left and right halves at
// Width()/2.
func (c *Canvas) SplitHorizontally() (left, right *Canvas) {
	return c.SplitHorizontallyAt(c.region.Dx() / 2)
}

// SplitHorizontallyAt splits the region into a left part offset pixels wide
// and a right part holding the remaining columns. Both span the full height.
// Offsets outside [0, Width()] are clamped, so one side may be empty.
func (c *Canvas) SplitHorizontallyAt(offset int) (left, right *Canvas) {
	l, r := splitX(c.region, offset)
	Logger().Debug("canvas: split horizontally",
		"region", c.region, "offset", offset, "left", l, "right", r)
	return c.derive(l), c.derive(r)
}

// SplitVertically splits the region into top and bottom halves at
// Height()/2.
func (c *Canvas) SplitVertically() (top, bottom *Canvas) {
	return c.SplitVerticallyAt(c.region.Dy() / 2)
}

// SplitVerticallyAt splits the region into a top part offset pixels high and
// a bottom part holding the remaining rows. Both span the full width.
// Offsets outside [0, Height()] are clamped, so one side may be empty.
func (c *Canvas) SplitVerticallyAt(offset int) (top, bottom *Canvas) {
	t, b := splitY(c.region, offset)
	Logger().Debug("canvas: split vertically",
		"region", c.region, "offset", offset, "top", t, "bottom", b)
	return c.derive(t), c.derive(b)
}

// IsRoot reports whether c is the root canvas of its backend.
func (c *Canvas) IsRoot() bool {
	return c.root
}

// Bounds returns the region in backend pixel coordinates.
func (c *Canvas) Bounds() image.Rectangle {
	return c.region
}

// Width returns the region width in pixels.
func (c *Canvas) Width() int {
	return c.region.Dx()
}

// Height returns the region height in pixels.
func (c *Canvas) Height() int {
	return c.region.Dy()
}

// Backend returns the shared backend.
func (c *Canvas) Backend() *Backend {
	return c.backend
}

// Image returns a drawable view of the region. The view shares pixels with
// the backend and uses backend coordinates (its Bounds equal c.Bounds() for
// a non-empty region), following the image.SubImage convention. Writes
// outside the region are dropped.
func (c *Canvas) Image() draw.Image {
	return c.backend.surface.Sub(c.region)
}
