// Package image provides the RGB8 pixel surface and file encoders used by
// github.com/gogpu/canvas.
//
// The surface type RGB mirrors the standard library's image.RGBA but stores
// three bytes per pixel with no alpha channel. It never owns its memory: it
// is bound to a caller-provided byte slice with FromRaw and only ever
// re-slices that slice, so every sub-image shares the same pixels.
package image

import (
	"errors"
	"image"
	"image/color"
)

// BytesPerPixel is the size of one RGB8 sample.
const BytesPerPixel = 3

// Common errors for surface construction.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")
)

// RGB is an in-memory image whose At method returns color.RGBA values with
// A fixed at 0xff.
//
// Pix holds the image's pixels in R, G, B order. The pixel at (x, y)
// starts at Pix[(y-Rect.Min.Y)*Stride + (x-Rect.Min.X)*3].
//
// RGB is not safe for concurrent use.
type RGB struct {
	Pix    []uint8
	Stride int
	Rect   image.Rectangle
}

// FromRaw binds a surface to existing data without copying.
// The caller must keep data alive and must not re-slice or grow it for the
// lifetime of the surface.
func FromRaw(data []byte, width, height int) (*RGB, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	stride := width * BytesPerPixel
	if len(data) < stride*height {
		return nil, ErrDataTooSmall
	}

	return &RGB{
		Pix:    data[:stride*height],
		Stride: stride,
		Rect:   image.Rect(0, 0, width, height),
	}, nil
}

// ColorModel implements image.Image.
func (p *RGB) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (p *RGB) Bounds() image.Rectangle { return p.Rect }

// Opaque reports true: RGB has no alpha channel. Encoders such as image/png
// use this to pick a 3-channel color type.
func (p *RGB) Opaque() bool { return true }

// At implements image.Image.
func (p *RGB) At(x, y int) color.Color {
	return p.RGBAAt(x, y)
}

// RGBAAt returns the color of the pixel at (x, y), or the zero color when
// the point lies outside the bounds.
func (p *RGB) RGBAAt(x, y int) color.RGBA {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return color.RGBA{}
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	return color.RGBA{R: s[0], G: s[1], B: s[2], A: 0xff}
}

// PixOffset returns the index of the first element of Pix that corresponds
// to the pixel at (x, y).
func (p *RGB) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*BytesPerPixel
}

// Set implements draw.Image. Translucent colors are stored premultiplied,
// i.e. composited over black.
func (p *RGB) Set(x, y int, c color.Color) {
	p.SetRGBA(x, y, color.RGBAModel.Convert(c).(color.RGBA))
}

// SetRGBA stores c at (x, y), dropping alpha. Points outside the bounds are
// ignored.
func (p *RGB) SetRGBA(x, y int, c color.RGBA) {
	if !(image.Point{X: x, Y: y}.In(p.Rect)) {
		return
	}
	i := p.PixOffset(x, y)
	s := p.Pix[i : i+3 : i+3]
	s[0] = c.R
	s[1] = c.G
	s[2] = c.B
}

// SubImage returns an image representing the portion of p visible through
// r. The returned value shares pixels with the original image.
func (p *RGB) SubImage(r image.Rectangle) image.Image {
	return p.Sub(r)
}

// Sub is SubImage with a concrete return type.
func (p *RGB) Sub(r image.Rectangle) *RGB {
	r = r.Intersect(p.Rect)
	// An empty intersection keeps its rectangle but gets no pixels: every
	// accessor checks bounds first, so Pix is never indexed.
	if r.Empty() {
		return &RGB{Stride: p.Stride, Rect: r}
	}
	i := p.PixOffset(r.Min.X, r.Min.Y)
	return &RGB{
		Pix:    p.Pix[i:],
		Stride: p.Stride,
		Rect:   r,
	}
}

// Fill sets every pixel inside r (clipped to the bounds) to c.
// The first row is painted pixel by pixel, then doubled with copy; the
// remaining rows are copied from the first.
func (p *RGB) Fill(r image.Rectangle, c color.RGBA) {
	r = r.Intersect(p.Rect)
	if r.Empty() {
		return
	}

	rowLen := r.Dx() * BytesPerPixel
	first := p.PixOffset(r.Min.X, r.Min.Y)
	row := p.Pix[first : first+rowLen]
	row[0], row[1], row[2] = c.R, c.G, c.B
	for filled := BytesPerPixel; filled < rowLen; filled *= 2 {
		copy(row[filled:], row[:filled])
	}

	for y := r.Min.Y + 1; y < r.Max.Y; y++ {
		i := p.PixOffset(r.Min.X, y)
		copy(p.Pix[i:i+rowLen], row)
	}
}
