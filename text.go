package canvas

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"
	"slices"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/canvas/internal/facecache"
)

// faces caches parsed OpenType faces across canvases.
var faces = facecache.New[facecache.Key, font.Face](facecache.DefaultCapacity)

// LoadFontFace parses TrueType/OpenType data and returns a face of the given
// size in points at 72 DPI, so one point is one pixel. Faces are cached by
// content and size; repeated calls with the same data are cheap.
//
// A face returned here may be shared with other canvases and, like the
// canvases themselves, must not be used from several goroutines at once.
func LoadFontFace(data []byte, size float64) (font.Face, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty font data", ErrInvalidArgument)
	}
	if math.IsNaN(size) || math.IsInf(size, 0) || size <= 0 {
		return nil, fmt.Errorf("%w: font size %v must be positive and finite", ErrInvalidArgument, size)
	}

	face, err := faces.GetOrCreate(facecache.KeyFor(data, size), func() (font.Face, error) {
		f, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("%w: parse font: %w", ErrInvalidArgument, err)
		}
		face, err := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			return nil, fmt.Errorf("%w: create face: %w", ErrInvalidArgument, err)
		}
		Logger().Debug("canvas: font face loaded", "size", size, "bytes", len(data))
		return face, nil
	})
	if err != nil {
		return nil, err
	}
	if l := Logger(); l.Enabled(context.Background(), slog.LevelDebug) {
		st := faces.Stats()
		l.Debug("canvas: face cache", "len", st.Len, "hits", st.Hits, "misses", st.Misses, "evictions", st.Evictions)
	}
	return face, nil
}

// DrawText draws s with its baseline starting at the local point (x, y),
// using the backend's face. Glyphs are clipped to the region. Strings mixing
// left-to-right and right-to-left scripts are drawn in visual order.
func (c *Canvas) DrawText(s string, x, y int, col color.Color) {
	if s == "" {
		return
	}
	p := c.local(x, y)
	d := &font.Drawer{
		Dst:  c.Image(),
		Src:  image.NewUniform(opaque(col)),
		Face: c.backend.face,
		Dot:  fixed.P(p.X, p.Y),
	}
	d.DrawString(visualOrder(s))
}

// MeasureText returns the advance width of s and the line height of the
// backend's face, in pixels.
func (c *Canvas) MeasureText(s string) (width, height int) {
	face := c.backend.face
	return font.MeasureString(face, s).Ceil(), face.Metrics().Height.Ceil()
}

// visualOrder reorders s for left-to-right glyph placement. Strings without
// right-to-left characters are returned unchanged.
//
// The paragraph direction follows the first strong character. Runs come
// back from bidi in logical order, so in a right-to-left paragraph they are
// emitted last to first.
func visualOrder(s string) string {
	if !hasRTL(s) {
		return s
	}

	dir := paragraphDirection(s)
	var p bidi.Paragraph
	if _, err := p.SetString(s, bidi.DefaultDirection(dir)); err != nil {
		return s
	}
	ordering, err := p.Order()
	if err != nil {
		return s
	}

	runs := make([]string, ordering.NumRuns())
	for i := range runs {
		run := ordering.Run(i)
		if run.Direction() == bidi.RightToLeft {
			runs[i] = bidi.ReverseString(run.String())
		} else {
			runs[i] = run.String()
		}
	}
	if dir == bidi.RightToLeft {
		slices.Reverse(runs)
	}
	return strings.Join(runs, "")
}

// paragraphDirection returns the direction of the first strong character in
// s, or LeftToRight when there is none.
func paragraphDirection(s string) bidi.Direction {
	for _, r := range s {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return bidi.LeftToRight
		case bidi.R, bidi.AL:
			return bidi.RightToLeft
		}
	}
	return bidi.LeftToRight
}

func hasRTL(s string) bool {
	for _, r := range s {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.R, bidi.AL:
			return true
		}
	}
	return false
}
