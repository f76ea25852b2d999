package renderer

import (
	"math"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/geometry"
)

// shadowAcneEpsilon keeps scattered rays from re-hitting their own surface
const shadowAcneEpsilon = 0.0001

var (
	horizonColor = core.NewVec3(1.0, 1.0, 1.0)
	zenithColor  = core.NewVec3(0.5, 0.7, 1.0)
)

// RayColor returns the light carried back along r, following at most depth bounces
func (c *Camera) RayColor(r core.Ray, depth int, world geometry.Hittable, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.NewVec3(0, 0, 0)
	}

	hit, isHit := world.Hit(r, core.NewInterval(shadowAcneEpsilon, math.Inf(1)))
	if !isHit {
		return backgroundGradient(r)
	}

	scatter, didScatter := hit.Material.Scatter(r, hit, sampler)
	if !didScatter {
		return core.NewVec3(0, 0, 0) // Material absorbed the ray
	}

	return scatter.Attenuation.MultiplyVec(c.RayColor(scatter.Scattered, depth-1, world, sampler))
}

// backgroundGradient returns a white-to-blue sky gradient based on ray direction
func backgroundGradient(r core.Ray) core.Vec3 {
	unitDirection := r.Direction.Unit()

	// Map y from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*horizon + t*zenith
	return horizonColor.Multiply(1.0 - t).Add(zenithColor.Multiply(t))
}
