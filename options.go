package canvas

import (
	"image/color"
	"math"

	"golang.org/x/image/font"
)

// Default canvas configuration.
const (
	// DefaultWidth is the root canvas width used when WithSize is not given.
	DefaultWidth = 1000

	// DefaultHeight is the root canvas height used when WithSize is not given.
	DefaultHeight = 800

	// DefaultMaxBufferSize is the largest pixel buffer New will allocate.
	DefaultMaxBufferSize = math.MaxInt
)

// Option configures a root Canvas during creation.
//
// Example:
//
//	// 1000x800, light gray background
//	c, err := canvas.New()
//
//	// Custom size and background
//	c, err := canvas.New(canvas.WithSize(640, 480), canvas.WithBackground("#ffffff"))
type Option func(*options)

// options holds optional configuration for root creation.
type options struct {
	width           int
	height          int
	background      string
	backgroundColor color.Color
	face            font.Face
	maxBufferSize   int
	jpegQuality     int
}

// defaultOptions returns the default options.
func defaultOptions() options {
	return options{
		width:         DefaultWidth,
		height:        DefaultHeight,
		maxBufferSize: DefaultMaxBufferSize,
	}
}

// WithSize sets the pixel dimensions of the buffer. Both values must be
// positive; New reports ErrInvalidArgument otherwise.
func WithSize(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// WithBackground sets the fill color from a string. Accepted forms are
// "#rgb", "#rrggbb", "#rrggbbaa" (alpha is ignored) and SVG color names
// such as "white" or "steelblue". An empty string keeps DefaultBackground.
func WithBackground(s string) Option {
	return func(o *options) {
		o.background = s
	}
}

// WithBackgroundColor sets the fill color directly. It takes precedence over
// WithBackground.
func WithBackgroundColor(c color.Color) Option {
	return func(o *options) {
		o.backgroundColor = c
	}
}

// WithFontFace sets the face used by DrawText and Titled on the root and
// every canvas split from it. The default is basicfont.Face7x13.
func WithFontFace(face font.Face) Option {
	return func(o *options) {
		o.face = face
	}
}

// WithMaxBufferSize caps the pixel buffer size in bytes. New fails with
// ErrAllocation when width*height*3 exceeds it.
func WithMaxBufferSize(n int) Option {
	return func(o *options) {
		o.maxBufferSize = n
	}
}

// WithJPEGQuality sets the quality (1-100) used when saving JPEG files.
// Zero selects the encoder default.
func WithJPEGQuality(q int) Option {
	return func(o *options) {
		o.jpegQuality = q
	}
}
