package output

import (
	"fmt"
	"image"
	"image/color"
	"path/filepath"
	"strings"
)

// Format identifies an image file encoding
type Format string

const (
	FormatPPM Format = "ppm"
	FormatPNG Format = "png"
)

// FormatFromPath picks the encoding from a file extension, defaulting to PPM
func FormatFromPath(path string) (Format, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".ppm", "":
		return FormatPPM, nil
	case ".png":
		return FormatPNG, nil
	default:
		return "", fmt.Errorf("unsupported image extension %q", ext)
	}
}

// ToImage copies a row-major, top-to-bottom pixel sequence into an image
func ToImage(width, height int, pixels []color.RGBA) (*image.RGBA, error) {
	if err := checkDimensions(width, height, pixels); err != nil {
		return nil, err
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for j := 0; j < height; j++ {
		for i := 0; i < width; i++ {
			img.SetRGBA(i, j, pixels[j*width+i])
		}
	}
	return img, nil
}

func checkDimensions(width, height int, pixels []color.RGBA) error {
	if width < 1 || height < 1 {
		return fmt.Errorf("invalid image size %dx%d", width, height)
	}
	if len(pixels) != width*height {
		return fmt.Errorf("expected %d pixels for %dx%d image, got %d", width*height, width, height, len(pixels))
	}
	return nil
}
