package canvas

import (
	"image"
	"slices"
)

// Region arithmetic. All functions are pure: they never touch pixels and
// never fail. Results are always contained in the input rectangle; offsets
// past the edge produce empty (zero-width or zero-height) rectangles.

// splitX cuts r into a left part offset pixels wide and a right part with
// the remaining width. offset is clamped to [0, r.Dx()].
func splitX(r image.Rectangle, offset int) (left, right image.Rectangle) {
	x := r.Min.X + clamp(offset, 0, r.Dx())
	left = image.Rectangle{Min: r.Min, Max: image.Point{X: x, Y: r.Max.Y}}
	right = image.Rectangle{Min: image.Point{X: x, Y: r.Min.Y}, Max: r.Max}
	return left, right
}

// splitY cuts r into a top part offset pixels high and a bottom part with
// the remaining height. offset is clamped to [0, r.Dy()].
func splitY(r image.Rectangle, offset int) (top, bottom image.Rectangle) {
	y := r.Min.Y + clamp(offset, 0, r.Dy())
	top = image.Rectangle{Min: r.Min, Max: image.Point{X: r.Max.X, Y: y}}
	bottom = image.Rectangle{Min: image.Point{X: r.Min.X, Y: y}, Max: r.Max}
	return top, bottom
}

// evenCuts returns n+1 ascending boundaries dividing [lo, hi) into n spans
// whose lengths differ by at most one.
func evenCuts(lo, hi, n int) []int {
	cuts := make([]int, n+1)
	length := hi - lo
	for i := range cuts {
		cuts[i] = lo + length*i/n
	}
	return cuts
}

// breakpointCuts turns breakpoints relative to lo into ascending absolute
// boundaries framed by lo and hi. Breakpoints outside [0, hi-lo] are
// clamped.
func breakpointCuts(lo, hi int, breakpoints []int) []int {
	cuts := make([]int, 0, len(breakpoints)+2)
	cuts = append(cuts, lo)
	for _, bp := range breakpoints {
		cuts = append(cuts, lo+clamp(bp, 0, hi-lo))
	}
	slices.Sort(cuts[1:])
	return append(cuts, hi)
}

// grid returns the row-major cells formed by column boundaries xs and row
// boundaries ys.
func grid(xs, ys []int) []image.Rectangle {
	if len(xs) < 2 || len(ys) < 2 {
		return nil
	}
	cells := make([]image.Rectangle, 0, (len(xs)-1)*(len(ys)-1))
	for j := 0; j+1 < len(ys); j++ {
		for i := 0; i+1 < len(xs); i++ {
			cells = append(cells, image.Rectangle{
				Min: image.Point{X: xs[i], Y: ys[j]},
				Max: image.Point{X: xs[i+1], Y: ys[j+1]},
			})
		}
	}
	return cells
}

// inset shrinks r by the given margins. Negative margins count as zero;
// margins larger than the region collapse it to an empty rectangle anchored
// inside r.
func inset(r image.Rectangle, top, right, bottom, left int) image.Rectangle {
	top, right, bottom, left = max(top, 0), max(right, 0), max(bottom, 0), max(left, 0)

	minX := min(r.Min.X+left, r.Max.X)
	minY := min(r.Min.Y+top, r.Max.Y)
	return image.Rectangle{
		Min: image.Point{X: minX, Y: minY},
		Max: image.Point{X: max(r.Max.X-right, minX), Y: max(r.Max.Y-bottom, minY)},
	}
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
