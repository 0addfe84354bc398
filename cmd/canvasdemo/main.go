// Command canvasdemo splits a canvas into a titled grid of panels and saves
// the result.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/canvas"
)

var palette = []color.RGBA{
	colornames.Steelblue,
	colornames.Indianred,
	colornames.Seagreen,
	colornames.Goldenrod,
	colornames.Slateblue,
	colornames.Darkorange,
}

func main() {
	var (
		width      = flag.Int("width", canvas.DefaultWidth, "image width")
		height     = flag.Int("height", canvas.DefaultHeight, "image height")
		background = flag.String("background", "", "background color (#rrggbb or SVG name)")
		rows       = flag.Int("rows", 2, "grid rows")
		cols       = flag.Int("cols", 3, "grid columns")
		title      = flag.String("title", "canvas demo", "title drawn above the grid")
		picture    = flag.String("image", "", "image file scaled into the first panel")
		gofont     = flag.Bool("gofont", false, "draw text with Go Regular instead of the 7x13 bitmap face")
		output     = flag.String("output", "demo.png", "output file (.png, .jpg, .gif, .bmp, .tiff)")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	if *verbose {
		canvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	opts := []canvas.Option{
		canvas.WithSize(*width, *height),
		canvas.WithBackground(*background),
	}
	if *gofont {
		face, err := canvas.LoadFontFace(goregular.TTF, 14)
		if err != nil {
			log.Fatalf("Failed to load font: %v", err)
		}
		opts = append(opts, canvas.WithFontFace(face))
	}

	root, err := canvas.New(opts...)
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}

	panels, err := root.Titled(*title, color.Black).Margin(0, 8, 8, 8).SplitEvenly(*rows, *cols)
	if err != nil {
		log.Fatalf("Failed to split canvas: %v", err)
	}
	for i, p := range panels {
		drawPanel(p, i)
	}
	if *picture != "" {
		img, err := canvas.LoadImage(*picture)
		if err != nil {
			log.Fatalf("Failed to load image: %v", err)
		}
		area := panels[0].Margin(32, 12, 12, 12)
		area.DrawImage(img, image.Rect(0, 0, area.Width(), area.Height()))
	}

	if err := root.Save(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// drawPanel fills a panel, splits it into a header and a bar strip, and
// labels it.
func drawPanel(p *canvas.Canvas, i int) {
	inner := p.Margin(4, 4, 4, 4)
	inner.Fill(color.White)

	header, body := inner.SplitVerticallyAt(24)
	header.Fill(palette[i%len(palette)])
	header.DrawText(fmt.Sprintf("panel %d", i+1), 6, 16, color.White)

	bars := body.Margin(8, 8, 8, 8)
	n := 8
	strip := bars
	for k := range n {
		var bar *canvas.Canvas
		bar, strip = strip.SplitHorizontallyAt(bars.Width() / n)
		h := bar.Height() * ((k*37+i*11)%90 + 10) / 100
		bar.FillRect(image.Rect(2, bar.Height()-h, bar.Width()-2, bar.Height()), palette[(i+k)%len(palette)])
	}
}
