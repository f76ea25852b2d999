package renderer

import (
	"fmt"
	"image/color"
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
)

// Fixed pinhole geometry: the camera sits at the origin looking down -Z
const (
	focalLength    = 1.0
	viewportHeight = 2.0
)

// cameraConfig is the user-settable part of a Camera, used to detect changes
type cameraConfig struct {
	aspectRatio     float64
	imageWidth      int
	samplesPerPixel int
	maxDepth        int
}

// Camera generates rays for rendering and turns them into pixels
type Camera struct {
	AspectRatio     float64     // Ratio of image width over height
	ImageWidth      int         // Rendered image width in pixels
	SamplesPerPixel int         // Count of random samples for each pixel
	MaxDepth        int         // Maximum number of ray bounces into scene
	Logger          core.Logger // Optional progress output

	ready             bool
	configured        cameraConfig
	imageHeight       int
	pixelSamplesScale float64
	center            core.Vec3
	pixel00Loc        core.Vec3
	pixelDeltaU       core.Vec3
	pixelDeltaV       core.Vec3
}

// NewCamera creates a camera with small default settings
func NewCamera() *Camera {
	return &Camera{
		AspectRatio:     1.0,
		ImageWidth:      100,
		SamplesPerPixel: 10,
		MaxDepth:        10,
	}
}

// Initialize validates the configuration and computes the derived viewport
// geometry. Repeated calls are no-ops until the configuration changes.
func (c *Camera) Initialize() error {
	config := cameraConfig{
		aspectRatio:     c.AspectRatio,
		imageWidth:      c.ImageWidth,
		samplesPerPixel: c.SamplesPerPixel,
		maxDepth:        c.MaxDepth,
	}
	if c.ready && config == c.configured {
		return nil
	}
	c.ready = false

	if !(c.AspectRatio > 0) || math.IsInf(c.AspectRatio, 0) {
		return fmt.Errorf("aspect ratio must be positive and finite, got %v", c.AspectRatio)
	}
	if c.ImageWidth < 1 {
		return fmt.Errorf("image width must be at least 1, got %d", c.ImageWidth)
	}
	if c.SamplesPerPixel < 1 {
		return fmt.Errorf("samples per pixel must be at least 1, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth < 0 {
		return fmt.Errorf("max depth must not be negative, got %d", c.MaxDepth)
	}

	c.imageHeight = max(1, int(float64(c.ImageWidth)/c.AspectRatio))
	c.pixelSamplesScale = 1.0 / float64(c.SamplesPerPixel)
	c.center = core.NewVec3(0, 0, 0)

	// Use the real image ratio, not AspectRatio, since height was rounded
	viewportWidth := viewportHeight * (float64(c.ImageWidth) / float64(c.imageHeight))

	// Vectors across the horizontal and down the vertical viewport edges
	viewportU := core.NewVec3(viewportWidth, 0, 0)
	viewportV := core.NewVec3(0, -viewportHeight, 0)

	c.pixelDeltaU = viewportU.Divide(float64(c.ImageWidth))
	c.pixelDeltaV = viewportV.Divide(float64(c.imageHeight))

	viewportUpperLeft := c.center.
		Subtract(core.NewVec3(0, 0, focalLength)).
		Subtract(viewportU.Divide(2)).
		Subtract(viewportV.Divide(2))
	c.pixel00Loc = viewportUpperLeft.Add(c.pixelDeltaU.Add(c.pixelDeltaV).Multiply(0.5))

	c.configured = config
	c.ready = true
	return nil
}

// ImageHeight returns the derived image height, or 0 before Initialize
func (c *Camera) ImageHeight() int {
	if !c.ready {
		return 0
	}
	return c.imageHeight
}

// GetRay returns a ray from the camera center through a random point in
// the square around pixel (i, j)
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offsetX := sampler.Get1D() - 0.5
	offsetY := sampler.Get1D() - 0.5

	pixelSample := c.pixel00Loc.
		Add(c.pixelDeltaU.Multiply(float64(i) + offsetX)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offsetY))

	return core.NewRay(c.center, pixelSample.Subtract(c.center))
}

// Render traces every pixel sequentially and returns them row-major,
// top-to-bottom, left-to-right
func (c *Camera) Render(world geometry.Hittable, sampler core.Sampler) ([]color.RGBA, error) {
	if err := c.Initialize(); err != nil {
		return nil, err
	}

	pixels := make([]color.RGBA, 0, c.ImageWidth*c.imageHeight)
	for j := 0; j < c.imageHeight; j++ {
		c.logf("Scanlines remaining: %d", c.imageHeight-j)
		for i := 0; i < c.ImageWidth; i++ {
			pixels = append(pixels, c.renderPixel(i, j, world, sampler))
		}
	}
	c.logf("Done.")

	return pixels, nil
}

// renderPixel averages SamplesPerPixel jittered samples for pixel (i, j)
func (c *Camera) renderPixel(i, j int, world geometry.Hittable, sampler core.Sampler) color.RGBA {
	colorAccum := core.NewVec3(0, 0, 0)
	for sample := 0; sample < c.SamplesPerPixel; sample++ {
		ray := c.GetRay(i, j, sampler)
		colorAccum = colorAccum.Add(c.RayColor(ray, c.MaxDepth, world, sampler))
	}
	return ToRGBA(colorAccum.Multiply(c.pixelSamplesScale))
}

func (c *Camera) logf(format string, args ...interface{}) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}
