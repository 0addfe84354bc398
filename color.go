package canvas

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// defaultBackground is the fill color of a new root canvas.
var defaultBackground = color.RGBA{R: 238, G: 238, B: 238, A: 255}

// DefaultBackground returns the fill color of a new root canvas,
// RGB(238, 238, 238).
func DefaultBackground() color.RGBA { return defaultBackground }

// ParseColor parses "#rgb", "#rrggbb", "#rrggbbaa" (the leading '#' is
// optional for hex forms) or an SVG 1.1 color name. The alpha component of
// an 8-digit hex color is discarded because the buffer has no alpha
// channel; the result is always opaque.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		c.A = 255
		return c, nil
	}

	hex := strings.TrimPrefix(s, "#")
	var r, g, b uint8
	var ok bool
	switch len(hex) {
	case 3: // RGB
		r, ok = parseHex(hex[0:1])
		if ok {
			g, ok = parseHex(hex[1:2])
		}
		if ok {
			b, ok = parseHex(hex[2:3])
		}
		r, g, b = r*17, g*17, b*17
	case 6, 8: // RRGGBB, RRGGBBAA
		r, ok = parseHex(hex[0:2])
		if ok {
			g, ok = parseHex(hex[2:4])
		}
		if ok {
			b, ok = parseHex(hex[4:6])
		}
		if ok && len(hex) == 8 {
			_, ok = parseHex(hex[6:8])
		}
	}
	if !ok {
		return color.RGBA{}, fmt.Errorf("%w: color %q", ErrInvalidArgument, s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// parseHex parses one or two hex digits.
func parseHex(s string) (uint8, bool) {
	var v uint8
	for i := 0; i < len(s); i++ {
		c := s[i]
		v *= 16
		switch {
		case '0' <= c && c <= '9':
			v += c - '0'
		case 'a' <= c && c <= 'f':
			v += c - 'a' + 10
		case 'A' <= c && c <= 'F':
			v += c - 'A' + 10
		default:
			return 0, false
		}
	}
	return v, true
}

// opaque converts c to an RGBA value with alpha forced to 255, compositing
// translucent colors over black.
func opaque(c color.Color) color.RGBA {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	rgba.A = 255
	return rgba
}
