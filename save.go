package canvas

import (
	"errors"
	"io"

	cimage "github.com/gogpu/canvas/internal/image"
)

// Format identifies an output image encoding.
type Format = cimage.Format

// Supported output formats.
const (
	FormatUnknown = cimage.FormatUnknown
	FormatPNG     = cimage.FormatPNG
	FormatJPEG    = cimage.FormatJPEG
	FormatGIF     = cimage.FormatGIF
	FormatBMP     = cimage.FormatBMP
	FormatTIFF    = cimage.FormatTIFF
)

// FormatFromPath returns the format selected by the extension of path:
// .png, .jpg/.jpeg, .gif, .bmp or .tif/.tiff (case-insensitive).
func FormatFromPath(path string) Format {
	return cimage.FormatFromPath(path)
}

// Save writes the whole buffer to path as an RGB8 image in the format
// selected by the file extension.
//
// Only the root canvas may save; any other canvas gets ErrNonRootSave and
// no file is touched. The image is encoded into a temporary file next to
// path and renamed into place, so a failed save leaves no partial output.
// Write and encoding failures are reported as *SaveError.
//
// Replacing an existing file keeps its permission bits; new files are
// created 0644. If path is a symbolic link, the file it points to is
// replaced and the link itself is left in place.
func (c *Canvas) Save(path string) error {
	if !c.root {
		return ErrNonRootSave
	}

	f := cimage.FormatFromPath(path)
	opts := cimage.EncodeOptions{Quality: c.backend.jpegQuality}
	if err := cimage.WriteFile(path, c.backend.surface, f, opts); err != nil {
		warnCleanup(path, err)
		return &SaveError{Path: path, Err: err}
	}

	Logger().Debug("canvas: saved",
		"path", path, "format", f, "width", c.backend.width, "height", c.backend.height)
	return nil
}

// Encode writes the whole buffer to w in the given format. Like Save, it is
// only permitted on the root canvas.
func (c *Canvas) Encode(w io.Writer, format Format) error {
	if !c.root {
		return ErrNonRootSave
	}
	return cimage.Encode(w, c.backend.surface, format, cimage.EncodeOptions{Quality: c.backend.jpegQuality})
}

// warnCleanup logs a temporary file that a failed save could not remove.
func warnCleanup(path string, err error) {
	var ce *cimage.CleanupError
	if errors.As(err, &ce) {
		Logger().Warn("canvas: save left a temporary file",
			"path", path, "temp", ce.Path, "err", ce.Err)
	}
}
