package canvas

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	cimage "github.com/gogpu/canvas/internal/image"
)

// Backend owns the pixel buffer shared by a root Canvas and every canvas
// split from it, together with the RGB8 surface bound to that buffer.
//
// The buffer is allocated once in New and never re-sliced, grown or
// replaced, so the surface's view of it stays valid for the Backend's whole
// lifetime. Canvases hold the Backend by pointer; it is reclaimed when the
// last of them becomes unreachable.
//
// A Backend has no internal synchronization. It and all canvases sharing it
// must be used from a single goroutine at a time.
type Backend struct {
	width  int
	height int
	pix    []byte
	// surface aliases pix; it is the only value that writes to it.
	surface *cimage.RGB

	face        font.Face
	jpegQuality int
}

// newBackend allocates a width x height buffer and binds a surface to it.
func newBackend(width, height int, o options) (*Backend, error) {
	n, err := bufferSize(width, height, o.maxBufferSize)
	if err != nil {
		return nil, err
	}

	pix, err := allocate(n)
	if err != nil {
		return nil, err
	}

	surface, err := cimage.FromRaw(pix, width, height)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	face := o.face
	if face == nil {
		face = basicfont.Face7x13
	}

	Logger().Debug("canvas: backend allocated",
		"width", width, "height", height, "bytes", n)

	return &Backend{
		width:       width,
		height:      height,
		pix:         pix,
		surface:     surface,
		face:        face,
		jpegQuality: o.jpegQuality,
	}, nil
}

// bufferSize returns width*height*3, failing with ErrAllocation when the
// product overflows int or exceeds limit.
func bufferSize(width, height, limit int) (int, error) {
	const maxInt = int(^uint(0) >> 1)
	if height > maxInt/cimage.BytesPerPixel/width {
		return 0, fmt.Errorf("%w: %dx%d pixels overflow the address space", ErrAllocation, width, height)
	}
	n := width * height * cimage.BytesPerPixel
	if n > limit {
		return 0, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrAllocation, n, limit)
	}
	return n, nil
}

// allocate converts a runtime refusal to allocate (makeslice: len out of
// range) into ErrAllocation.
func allocate(n int) (buf []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf, err = nil, fmt.Errorf("%w: %v", ErrAllocation, r)
		}
	}()
	return make([]byte, n), nil
}

// Size returns the buffer dimensions in pixels.
func (b *Backend) Size() (width, height int) {
	return b.width, b.height
}

// Pix returns the full RGB8 buffer, row-major, three bytes per pixel.
// The slice aliases the live buffer; it must be treated as read-only.
func (b *Backend) Pix() []byte {
	return b.pix
}

// Face returns the font face used for text on canvases of this backend.
func (b *Backend) Face() font.Face {
	return b.face
}
