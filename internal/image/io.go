package image

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")
)

// DefaultJPEGQuality is used when EncodeOptions.Quality is zero.
const DefaultJPEGQuality = jpeg.DefaultQuality

// EncodeOptions tunes the lossy encoders. The zero value is usable.
type EncodeOptions struct {
	// Quality is the JPEG quality (1-100). Zero selects DefaultJPEGQuality.
	Quality int
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format, opts EncodeOptions) error {
	var err error
	switch f {
	case FormatPNG:
		err = png.Encode(w, img)
	case FormatJPEG:
		q := opts.Quality
		if q == 0 {
			q = DefaultJPEGQuality
		}
		q = min(max(q, 1), 100)
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: q})
	case FormatGIF:
		err = gif.Encode(w, img, nil)
	case FormatBMP:
		err = bmp.Encode(w, img)
	case FormatTIFF:
		err = tiff.Encode(w, img, nil)
	default:
		return fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return fmt.Errorf("image: encode %v: %w", f, err)
	}
	return nil
}

// CleanupError reports a temporary file that a failed WriteFile could not
// close or remove. It is joined to the error that caused the failure.
type CleanupError struct {
	Path string
	Err  error
}

func (e *CleanupError) Error() string {
	return "image: clean up " + e.Path + ": " + e.Err.Error()
}

func (e *CleanupError) Unwrap() error { return e.Err }

// removeFile is swapped out by tests.
var removeFile = os.Remove

// WriteFile encodes img in format f and replaces path with the result.
//
// The data is written to a temporary file in the destination directory
// which is renamed over path only after encoding, flushing and closing
// succeed. On failure the temporary file is removed and path is left as it
// was; if the removal itself fails, a *CleanupError is joined to the
// returned error.
//
// A file being replaced keeps its permission bits; new files get 0644. When
// path is a symbolic link, the file it points to is replaced and the link is
// kept.
func WriteFile(path string, img image.Image, f Format, opts EncodeOptions) (err error) {
	if !f.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}

	path, mode := destination(filepath.Clean(path))
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("image: create temp file: %w", err)
	}
	closed := false
	defer func() {
		if err == nil {
			return
		}
		errs := []error{err}
		if !closed {
			if cerr := tmp.Close(); cerr != nil {
				errs = append(errs, &CleanupError{Path: tmp.Name(), Err: cerr})
			}
		}
		if rerr := removeFile(tmp.Name()); rerr != nil {
			errs = append(errs, &CleanupError{Path: tmp.Name(), Err: rerr})
		}
		if len(errs) > 1 {
			err = errors.Join(errs...)
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err = Encode(bw, img, f, opts); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("image: write file: %w", err)
	}
	closed = true
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("image: close file: %w", err)
	}
	if err = os.Chmod(tmp.Name(), mode); err != nil {
		return fmt.Errorf("image: chmod file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("image: rename file: %w", err)
	}
	return nil
}

// destination follows a symbolic link at path and returns the file to
// replace together with the permissions the new file should carry.
func destination(path string) (string, fs.FileMode) {
	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		path = resolved
	}
	if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
		return path, fi.Mode().Perm()
	}
	return path, 0o644
}

// Decode reads an image in format f from r.
func Decode(r io.Reader, f Format) (image.Image, error) {
	var (
		img image.Image
		err error
	)
	switch f {
	case FormatPNG:
		img, err = png.Decode(r)
	case FormatJPEG:
		img, err = jpeg.Decode(r)
	case FormatGIF:
		img, err = gif.Decode(r)
	case FormatBMP:
		img, err = bmp.Decode(r)
	case FormatTIFF:
		img, err = tiff.Decode(r)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("image: decode %v: %w", f, err)
	}
	return img, nil
}

// LoadImage decodes the file at path, picking the decoder from its
// extension.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(bufio.NewReader(f), FormatFromPath(path))
}
