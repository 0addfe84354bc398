package canvas

import (
	"fmt"
	"image"
	"image/color"
)

// titlePadding is the gap above and below a title, in pixels.
const titlePadding = 4

// SplitEvenly divides the region into a rows x cols grid and returns the
// cells in row-major order. Cell sizes differ by at most one pixel and the
// cells tile the region exactly. The canvas itself is left untouched.
//
// Counts must be positive and no larger than the region's extent in that
// direction (one for an empty region), otherwise ErrInvalidArgument is
// returned.
func (c *Canvas) SplitEvenly(rows, cols int) ([]*Canvas, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: grid %dx%d must be positive", ErrInvalidArgument, rows, cols)
	}
	if maxRows, maxCols := max(c.region.Dy(), 1), max(c.region.Dx(), 1); rows > maxRows || cols > maxCols {
		return nil, fmt.Errorf("%w: grid %dx%d exceeds region %dx%d",
			ErrInvalidArgument, rows, cols, c.region.Dy(), c.region.Dx())
	}
	cells := grid(
		evenCuts(c.region.Min.X, c.region.Max.X, cols),
		evenCuts(c.region.Min.Y, c.region.Max.Y, rows),
	)
	Logger().Debug("canvas: split evenly", "region", c.region, "rows", rows, "cols", cols)
	return c.deriveAll(cells), nil
}

// SplitByBreakpoints cuts the region at the given local x and y offsets and
// returns the (len(xs)+1) x (len(ys)+1) cells in row-major order.
// Breakpoints are sorted and clamped to the region; duplicates yield empty
// cells.
func (c *Canvas) SplitByBreakpoints(xs, ys []int) []*Canvas {
	cells := grid(
		breakpointCuts(c.region.Min.X, c.region.Max.X, xs),
		breakpointCuts(c.region.Min.Y, c.region.Max.Y, ys),
	)
	Logger().Debug("canvas: split by breakpoints", "region", c.region, "xs", xs, "ys", ys)
	return c.deriveAll(cells)
}

// Margin returns a child canvas inset by the given margins. Negative
// margins are treated as zero; margins wider than the region produce an
// empty child.
func (c *Canvas) Margin(top, right, bottom, left int) *Canvas {
	return c.derive(inset(c.region, top, right, bottom, left))
}

// Titled draws title centered in a band at the top of the region and
// returns a child canvas for the area below the band. The band is the
// face's line height plus padding; the title is clipped when wider than the
// region.
func (c *Canvas) Titled(title string, col color.Color) *Canvas {
	tw, th := c.MeasureText(title)
	band := th + 2*titlePadding

	ascent := c.backend.face.Metrics().Ascent.Ceil()
	c.DrawText(title, (c.region.Dx()-tw)/2, titlePadding+ascent, col)

	_, below := splitY(c.region, band)
	return c.derive(below)
}

func (c *Canvas) deriveAll(cells []image.Rectangle) []*Canvas {
	out := make([]*Canvas, len(cells))
	for i, r := range cells {
		out[i] = c.derive(r)
	}
	return out
}
