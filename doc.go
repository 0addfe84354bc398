// Package canvas provides a raster drawing surface that can be partitioned
// into non-overlapping rectangular regions.
//
// # Overview
//
// A root Canvas owns a single RGB8 pixel buffer (its Backend). Splitting a
// canvas produces two new canvases for adjacent sub-regions of the same
// buffer; the split canvas is left unchanged and can be split again or
// drawn into. Only the root canvas can write the buffer to a file.
//
// # Quick Start
//
//	import "github.com/gogpu/canvas"
//
//	root, err := canvas.New(canvas.WithSize(800, 600))
//	if err != nil {
//		return err
//	}
//
//	plot := root.Titled("Throughput", color.Black)
//	left, right := plot.SplitHorizontally()
//	left.Fill(colornames.Steelblue)
//	right.DrawText("no data", 10, 20, color.Black)
//
//	if err := root.Save("chart.png"); err != nil {
//		return err
//	}
//
// # Coordinate System
//
// Regions are expressed in backend pixel coordinates (Bounds). The drawing
// helpers (Fill, FillRect, SetPixel, DrawImage, DrawText) take canvas-local
// coordinates with the origin at the region's top-left corner, and clip to
// the region. Image returns a draw.Image view in backend coordinates for
// code built on the standard image/draw packages.
//
// # Output
//
// Save picks the encoder from the file extension: .png, .jpg/.jpeg, .gif,
// .bmp, .tif/.tiff. Files are written atomically through a temporary file.
//
// # Concurrency
//
// A Backend and its canvases carry no locks. Use them from one goroutine at
// a time. SetLogger, Logger and LoadFontFace are safe for concurrent use.
package canvas
