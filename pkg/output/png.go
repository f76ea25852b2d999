package output

import (
	"fmt"
	"image/color"
	"image/png"
	"io"
)

// WritePNG encodes pixels as a PNG image
func WritePNG(w io.Writer, width, height int, pixels []color.RGBA) error {
	img, err := ToImage(width, height, pixels)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// Write encodes pixels in the given format
func Write(w io.Writer, format Format, width, height int, pixels []color.RGBA) error {
	switch format {
	case FormatPPM:
		return WritePPM(w, width, height, pixels)
	case FormatPNG:
		return WritePNG(w, width, height, pixels)
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
}
