package canvas

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"
)

func mustNew(t *testing.T, opts ...Option) *Canvas {
	t.Helper()
	c, err := New(opts...)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return c
}

func TestNewDefaults(t *testing.T) {
	c := mustNew(t)

	if !c.IsRoot() {
		t.Error("New() returned a non-root canvas")
	}
	w, h := c.Backend().Size()
	if w != DefaultWidth || h != DefaultHeight {
		t.Errorf("Size() = %dx%d, want %dx%d", w, h, DefaultWidth, DefaultHeight)
	}
	if c.Bounds() != image.Rect(0, 0, 1000, 800) {
		t.Errorf("Bounds() = %v, want full buffer", c.Bounds())
	}
}

func TestNewFillsBackground(t *testing.T) {
	sizes := []struct{ w, h int }{{1, 1}, {3, 7}, {64, 1}, {1, 64}, {31, 17}}

	for _, sz := range sizes {
		c := mustNew(t, WithSize(sz.w, sz.h))

		pix := c.Backend().Pix()
		if len(pix) != sz.w*sz.h*3 {
			t.Fatalf("%dx%d: len(Pix) = %d, want %d", sz.w, sz.h, len(pix), sz.w*sz.h*3)
		}
		for i, v := range pix {
			if v != 238 {
				t.Fatalf("%dx%d: Pix[%d] = %d, want 238", sz.w, sz.h, i, v)
			}
		}
	}
}

func TestNewInvalidSize(t *testing.T) {
	tests := []struct{ w, h int }{{0, 10}, {10, 0}, {-1, 10}, {10, -5}, {0, 0}}

	for _, tt := range tests {
		c, err := New(WithSize(tt.w, tt.h))
		if !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("New(%d, %d) error = %v, want ErrInvalidArgument", tt.w, tt.h, err)
		}
		if c != nil {
			t.Errorf("New(%d, %d) returned a canvas on error", tt.w, tt.h)
		}
	}
}

func TestNewAllocationFailure(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"over limit", []Option{WithSize(10, 10), WithMaxBufferSize(299)}},
		{"overflow", []Option{WithSize(math.MaxInt, 2)}},
		{"overflow by channels", []Option{WithSize(math.MaxInt/2, 1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.opts...)
			if !errors.Is(err, ErrAllocation) {
				t.Errorf("New error = %v, want ErrAllocation", err)
			}
		})
	}

	// Exactly at the limit is fine.
	if _, err := New(WithSize(10, 10), WithMaxBufferSize(300)); err != nil {
		t.Errorf("New at limit failed: %v", err)
	}
}

func TestNewBackground(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
		want color.RGBA
	}{
		{"default", nil, DefaultBackground()},
		{"empty string", []Option{WithBackground("")}, DefaultBackground()},
		{"hex", []Option{WithBackground("#102030")}, color.RGBA{R: 0x10, G: 0x20, B: 0x30, A: 255}},
		{"name", []Option{WithBackground("white")}, color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{"color wins", []Option{WithBackground("white"), WithBackgroundColor(color.Black)}, color.RGBA{A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := mustNew(t, append([]Option{WithSize(4, 4)}, tt.opts...)...)
			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					if got := c.Pixel(x, y); got != tt.want {
						t.Fatalf("pixel (%d, %d) = %v, want %v", x, y, got, tt.want)
					}
				}
			}
		})
	}
}

func TestNewInvalidBackground(t *testing.T) {
	_, err := New(WithSize(4, 4), WithBackground("not-a-color"))
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("New error = %v, want ErrInvalidArgument", err)
	}
}

func TestSplitHorizontallyDefault(t *testing.T) {
	root := mustNew(t, WithSize(400, 300))

	left, right := root.SplitHorizontally()

	if left.Bounds() != image.Rect(0, 0, 200, 300) {
		t.Errorf("left = %v, want [0,200)x[0,300)", left.Bounds())
	}
	if right.Bounds() != image.Rect(200, 0, 400, 300) {
		t.Errorf("right = %v, want [200,400)x[0,300)", right.Bounds())
	}
	if left.IsRoot() || right.IsRoot() {
		t.Error("split children must not be root")
	}
	if left.Backend() != root.Backend() || right.Backend() != root.Backend() {
		t.Error("split children must share the parent's backend")
	}
}

func TestSplitDefaultsUseFloor(t *testing.T) {
	root := mustNew(t, WithSize(7, 5))

	l, r := root.SplitHorizontally()
	if l.Width() != 3 || r.Width() != 4 {
		t.Errorf("horizontal widths = %d, %d; want 3, 4", l.Width(), r.Width())
	}

	top, bottom := root.SplitVertically()
	if top.Height() != 2 || bottom.Height() != 3 {
		t.Errorf("vertical heights = %d, %d; want 2, 3", top.Height(), bottom.Height())
	}
	if top.Width() != 7 || bottom.Width() != 7 {
		t.Errorf("vertical widths = %d, %d; want 7, 7", top.Width(), bottom.Width())
	}
}

func TestSplitHorizontallyAtCovers(t *testing.T) {
	const w, h = 37, 11
	root := mustNew(t, WithSize(w, h))

	for p := 0; p <= w; p++ {
		l, r := root.SplitHorizontallyAt(p)
		if l.Width() != p || r.Width() != w-p {
			t.Fatalf("offset %d: widths %d, %d", p, l.Width(), r.Width())
		}
		if l.Height() != h || r.Height() != h {
			t.Fatalf("offset %d: heights %d, %d", p, l.Height(), r.Height())
		}
		if l.Bounds().Overlaps(r.Bounds()) {
			t.Fatalf("offset %d: regions overlap", p)
		}
		if l.Bounds().Min.X != 0 || l.Bounds().Max.X != r.Bounds().Min.X || r.Bounds().Max.X != w {
			t.Fatalf("offset %d: %v and %v do not cover [0,%d)", p, l.Bounds(), r.Bounds(), w)
		}
	}
}

func TestSplitDegenerate(t *testing.T) {
	root := mustNew(t, WithSize(10, 10))

	left, right := root.SplitHorizontallyAt(7)
	if left.Width() != 7 || right.Width() != 3 {
		t.Fatalf("widths = %d, %d; want 7, 3", left.Width(), right.Width())
	}

	top, bottom := left.SplitVerticallyAt(12)
	if top.Height() != 10 || bottom.Height() != 0 {
		t.Errorf("heights = %d, %d; want 10, 0", top.Height(), bottom.Height())
	}
	if top.Width() != 7 || bottom.Width() != 7 {
		t.Errorf("widths = %d, %d; want 7, 7", top.Width(), bottom.Width())
	}

	// Drawing into an empty region is a no-op, not a panic.
	bottom.Fill(color.Black)
	bottom.SetPixel(0, 0, color.Black)
	bottom.DrawText("x", 0, 10, color.Black)
	if got := bottom.Pixel(0, 0); got != (color.RGBA{}) {
		t.Errorf("Pixel on empty region = %v, want zero", got)
	}

	// Splitting an empty region again is fine too.
	a, b := bottom.SplitHorizontally()
	if a.Height() != 0 || b.Height() != 0 {
		t.Errorf("children of empty region have height %d, %d", a.Height(), b.Height())
	}
}

func TestSplitNegativeOffsetClamps(t *testing.T) {
	root := mustNew(t, WithSize(10, 6))

	l, r := root.SplitHorizontallyAt(-3)
	if l.Width() != 0 || r.Width() != 10 {
		t.Errorf("widths = %d, %d; want 0, 10", l.Width(), r.Width())
	}
	top, bottom := root.SplitVerticallyAt(-1)
	if top.Height() != 0 || bottom.Height() != 6 {
		t.Errorf("heights = %d, %d; want 0, 6", top.Height(), bottom.Height())
	}
}

func TestSplitIsNonConsuming(t *testing.T) {
	root := mustNew(t, WithSize(8, 8))
	before := root.Bounds()

	l1, _ := root.SplitHorizontally()
	l2, _ := root.SplitHorizontally()

	if root.Bounds() != before || !root.IsRoot() {
		t.Fatalf("parent changed after split: %v root=%v", root.Bounds(), root.IsRoot())
	}
	if l1.Bounds() != l2.Bounds() {
		t.Errorf("repeated splits differ: %v vs %v", l1.Bounds(), l2.Bounds())
	}

	// The parent is still drawable and writes reach the shared buffer.
	red := color.RGBA{R: 255, A: 255}
	root.SetPixel(6, 6, red)
	if got := l1.Backend().surface.RGBAAt(6, 6); got != red {
		t.Errorf("shared buffer pixel = %v, want %v", got, red)
	}

	// Children see parent draws inside their regions.
	root.Fill(red)
	if got := l2.Pixel(0, 0); got != red {
		t.Errorf("child pixel after parent fill = %v, want %v", got, red)
	}
}

func TestNestedSplitsShareBackend(t *testing.T) {
	root := mustNew(t, WithSize(16, 16))
	_, right := root.SplitHorizontally()
	top, _ := right.SplitVertically()
	_, leaf := top.SplitHorizontallyAt(2)

	if leaf.Backend() != root.Backend() {
		t.Fatal("nested child does not share the root backend")
	}
	if leaf.Bounds() != image.Rect(10, 0, 16, 8) {
		t.Errorf("leaf bounds = %v, want (10,0)-(16,8)", leaf.Bounds())
	}

	blue := color.RGBA{B: 255, A: 255}
	leaf.SetPixel(0, 0, blue)
	if got := root.Pixel(10, 0); got != blue {
		t.Errorf("root pixel (10,0) = %v, want %v", got, blue)
	}
}

func TestBackendBufferStable(t *testing.T) {
	root := mustNew(t, WithSize(32, 32))
	first := &root.Backend().Pix()[0]

	cells, err := root.SplitEvenly(4, 4)
	if err != nil {
		t.Fatal(err)
	}
	for i, c := range cells {
		c.Fill(color.Gray{Y: uint8(i * 10)})
		c.SplitHorizontally()
	}
	root.Fill(color.White)

	if &root.Backend().Pix()[0] != first {
		t.Error("buffer address changed")
	}
	if len(root.Backend().Pix()) != 32*32*3 {
		t.Error("buffer length changed")
	}
}

func TestImageView(t *testing.T) {
	root := mustNew(t, WithSize(10, 10))
	_, right := root.SplitHorizontallyAt(4)

	img := right.Image()
	if img.Bounds() != right.Bounds() {
		t.Fatalf("Image().Bounds() = %v, want %v", img.Bounds(), right.Bounds())
	}

	green := color.RGBA{G: 200, A: 255}
	img.Set(4, 0, green)
	img.Set(3, 0, green) // outside the region: dropped

	if got := root.Pixel(4, 0); got != green {
		t.Errorf("pixel (4,0) = %v, want %v", got, green)
	}
	if got := root.Pixel(3, 0); got == green {
		t.Error("Image view wrote outside its region")
	}
}
