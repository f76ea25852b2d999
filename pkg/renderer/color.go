package renderer

import (
	"image/color"
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

// intensity keeps quantized channels inside [0, 255]
var intensity = core.NewInterval(0.000, 0.999)

// LinearToGamma applies gamma 2 correction; non-positive input maps to 0
func LinearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// ToRGBA converts a linear color to an opaque 8-bit pixel
func ToRGBA(pixel core.Vec3) color.RGBA {
	r := LinearToGamma(pixel.X)
	g := LinearToGamma(pixel.Y)
	b := LinearToGamma(pixel.Z)

	return color.RGBA{
		R: uint8(256 * intensity.Clamp(r)),
		G: uint8(256 * intensity.Clamp(g)),
		B: uint8(256 * intensity.Clamp(b)),
		A: 255,
	}
}
