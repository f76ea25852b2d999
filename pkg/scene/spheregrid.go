package scene

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/material"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// oklchToRGB converts OKLCH color values to RGB
// L: lightness (0-1), C: chroma (0-0.4+), H: hue (0-360 degrees)
func oklchToRGB(l, c, h float64) core.Vec3 {
	hRad := h * math.Pi / 180.0

	// OKLCH to OKLAB
	a := c * math.Cos(hRad)
	b := c * math.Sin(hRad)

	// OKLAB to LMS
	l_ := l + 0.3963377774*a + 0.2158037573*b
	m_ := l - 0.1055613458*a - 0.0638541728*b
	s_ := l - 0.0894841775*a - 1.2914855480*b

	l_ = l_ * l_ * l_
	m_ = m_ * m_ * m_
	s_ = s_ * s_ * s_

	// LMS to linear RGB
	r := +4.0767416621*l_ - 3.3077115913*m_ + 0.2309699292*s_
	g := -1.2684380046*l_ + 2.6097574011*m_ - 0.3413193965*s_
	blue := -0.0041960863*l_ - 0.7034186147*m_ + 1.7076147010*s_

	unit := core.NewInterval(0, 1)
	return core.NewVec3(unit.Clamp(r), unit.Clamp(g), unit.Clamp(blue))
}

// NewSphereGridScene creates a grid of small spheres in front of the
// camera, each with a randomly chosen material
func NewSphereGridScene(seed int64) *Scene {
	camera := renderer.NewCamera()
	camera.AspectRatio = 16.0 / 9.0
	camera.ImageWidth = 400
	camera.SamplesPerPixel = 50
	camera.MaxDepth = 40

	random := core.NewSeededSampler(seed)
	world := geometry.NewHittableList()

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	world.Add(geometry.NewSphere(core.NewVec3(0, -1000.5, -1), 1000, ground))

	// Shared by every glass sphere in the grid
	glass := material.NewDielectric(1.5)

	const gridSize = 7
	const spacing = 0.45
	sphereRadius := spacing * 0.35

	for i := 0; i < gridSize; i++ {
		for j := 0; j < gridSize; j++ {
			x := (float64(i) - float64(gridSize-1)/2) * spacing
			z := -1.5 - float64(j)*spacing
			center := core.NewVec3(x, -0.5+sphereRadius, z)

			// Hue across X, chroma deeper into the grid
			hue := float64(i) / float64(gridSize-1) * 360.0
			chroma := 0.05 + float64(j)/float64(gridSize-1)*0.2
			albedo := oklchToRGB(0.65, chroma, hue)

			var mat material.Material
			switch choose := random.Get1D(); {
			case choose < 0.6:
				mat = material.NewLambertian(albedo)
			case choose < 0.9:
				mat = material.NewMetal(albedo, 0.3*random.Get1D())
			default:
				mat = glass
			}

			world.Add(geometry.NewSphere(center, sphereRadius, mat))
		}
	}

	return &Scene{Name: "spheregrid", World: world, Camera: camera}
}
