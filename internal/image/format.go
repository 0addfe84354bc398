package image

import (
	"path/filepath"
	"strings"
)

// Format identifies an output file encoding.
type Format uint8

const (
	// FormatUnknown is returned for unrecognized file extensions.
	FormatUnknown Format = iota

	// FormatPNG is lossless PNG, written as 8-bit truecolor.
	FormatPNG

	// FormatJPEG is baseline JPEG (lossy).
	FormatJPEG

	// FormatGIF is GIF with a quantized palette (lossy).
	FormatGIF

	// FormatBMP is uncompressed 24-bit BMP.
	FormatBMP

	// FormatTIFF is uncompressed TIFF.
	FormatTIFF

	// formatCount is the number of formats (for internal use).
	formatCount
)

// extensions maps lower-case file extensions to formats.
var extensions = map[string]Format{
	".png":  FormatPNG,
	".jpg":  FormatJPEG,
	".jpeg": FormatJPEG,
	".gif":  FormatGIF,
	".bmp":  FormatBMP,
	".tif":  FormatTIFF,
	".tiff": FormatTIFF,
}

// FormatFromPath selects a format from the extension of path.
// Matching is case-insensitive; FormatUnknown is returned when nothing
// matches.
func FormatFromPath(path string) Format {
	return extensions[strings.ToLower(filepath.Ext(path))]
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "PNG"
	case FormatJPEG:
		return "JPEG"
	case FormatGIF:
		return "GIF"
	case FormatBMP:
		return "BMP"
	case FormatTIFF:
		return "TIFF"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the format is a known encodable format.
func (f Format) IsValid() bool {
	return f > FormatUnknown && f < formatCount
}
