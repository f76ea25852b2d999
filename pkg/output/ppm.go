package output

import (
	"bufio"
	"fmt"
	"image/color"
	"io"
)

// WritePPM writes pixels as a plain-text PPM (P3): a header of format,
// "width height" and max value 255, then one "r g b" line per pixel
func WritePPM(w io.Writer, width, height int, pixels []color.RGBA) error {
	if err := checkDimensions(width, height, pixels); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P3\n%d %d\n255\n", width, height); err != nil {
		return fmt.Errorf("failed to write PPM header: %w", err)
	}

	for _, p := range pixels {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", p.R, p.G, p.B); err != nil {
			return fmt.Errorf("failed to write PPM pixel: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush PPM: %w", err)
	}
	return nil
}
