package canvas

import (
	"fmt"
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	cimage "github.com/gogpu/canvas/internal/image"
)

// The helpers below take canvas-local coordinates: (0, 0) is the top-left
// corner of the region. Everything is clipped to the region, so a canvas
// never writes into a sibling's pixels.

// local converts a local point to backend coordinates.
func (c *Canvas) local(x, y int) image.Point {
	return image.Point{X: c.region.Min.X + x, Y: c.region.Min.Y + y}
}

// Fill paints the whole region with col. Translucent colors are composited
// over black.
func (c *Canvas) Fill(col color.Color) {
	c.backend.surface.Fill(c.region, opaque(col))
}

// FillRect paints r, given in local coordinates and clipped to the region.
func (c *Canvas) FillRect(r image.Rectangle, col color.Color) {
	c.backend.surface.Fill(r.Add(c.region.Min).Intersect(c.region), opaque(col))
}

// SetPixel sets one pixel. Points outside the region are ignored.
func (c *Canvas) SetPixel(x, y int, col color.Color) {
	p := c.local(x, y)
	if !p.In(c.region) {
		return
	}
	c.backend.surface.SetRGBA(p.X, p.Y, opaque(col))
}

// Pixel returns the color at a local point, or the zero color outside the
// region.
func (c *Canvas) Pixel(x, y int) color.RGBA {
	p := c.local(x, y)
	if !p.In(c.region) {
		return color.RGBA{}
	}
	return c.backend.surface.RGBAAt(p.X, p.Y)
}

// DrawImage scales src into dst (local coordinates) with Catmull-Rom
// resampling and composites it over the existing pixels. Parts of dst that
// fall outside the region are clipped, not squeezed.
func (c *Canvas) DrawImage(src image.Image, dst image.Rectangle) {
	if dst.Empty() || src.Bounds().Empty() {
		return
	}
	xdraw.CatmullRom.Scale(c.Image(), dst.Add(c.region.Min), src, src.Bounds(), xdraw.Over, nil)
}

// LoadImage decodes the image file at path for use with DrawImage. The
// decoder is picked from the extension, as with Save.
func LoadImage(path string) (image.Image, error) {
	img, err := cimage.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("canvas: load image %s: %w", path, err)
	}
	return img, nil
}
