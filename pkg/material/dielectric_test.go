package material

import (
	"math"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
)

func TestDielectric_BasicBehavior(t *testing.T) {
	glass := NewDielectric(1.5)

	rayDirection := core.NewVec3(1, -1, 0).Unit() // 45-degree angle
	ray := core.NewRay(core.NewVec3(0, 1, 0), rayDirection)
	hit := &HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: true,
		Material:  glass,
	}

	hasReflection := false
	hasRefraction := false
	sampler := core.NewSeededSampler(42)

	for i := 0; i < 1000; i++ {
		result, scattered := glass.Scatter(ray, hit, sampler)
		if !scattered {
			t.Fatal("Dielectric should always scatter")
		}
		if result.Attenuation != core.NewVec3(1, 1, 1) {
			t.Fatalf("Expected white attenuation, got %v", result.Attenuation)
		}

		if result.Scattered.Direction.Y > 0 {
			hasReflection = true
		} else {
			hasRefraction = true
		}
	}

	if !hasReflection {
		t.Error("Expected some Schlick reflections at 45 degrees")
	}
	if !hasRefraction {
		t.Error("Expected refraction at 45 degrees")
	}
}

func TestDielectric_MatchedIndexDoesNotBend(t *testing.T) {
	dielectric := NewDielectric(1.0)

	directions := []core.Vec3{
		core.NewVec3(0, -1, 0),
		core.NewVec3(1, -1, 0),
		core.NewVec3(0.2, -1, 0.3),
	}

	for _, frontFace := range []bool{true, false} {
		for _, dir := range directions {
			hit := &HitRecord{Normal: core.NewVec3(0, 1, 0), FrontFace: frontFace}
			// Draws above Schlick reflectance always choose refraction
			sampler := &fixedSampler{values: []float64{0.999}}

			result, scattered := dielectric.Scatter(core.NewRay(core.NewVec3(0, 1, 0), dir), hit, sampler)
			if !scattered {
				t.Fatal("Dielectric should always scatter")
			}

			expected := dir.Unit()
			if result.Scattered.Direction.Subtract(expected).Length() > 1e-9 {
				t.Errorf("frontFace=%t: expected colinear %v, got %v", frontFace, expected, result.Scattered.Direction)
			}
		}
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	// Exiting glass at 60 degrees: 1.5*sin(60) > 1
	dir := core.NewVec3(math.Sin(math.Pi/3), -math.Cos(math.Pi/3), 0)
	hit := &HitRecord{Normal: core.NewVec3(0, 1, 0), FrontFace: false}

	// Even a draw that would normally refract must reflect
	sampler := &fixedSampler{values: []float64{0.999}}
	result, _ := glass.Scatter(core.NewRay(core.NewVec3(0, 0, 0), dir), hit, sampler)

	expected := core.Reflect(dir, hit.Normal)
	if result.Scattered.Direction.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected total internal reflection %v, got %v", expected, result.Scattered.Direction)
	}
}

func TestDielectric_RefractsTowardNormalWhenEntering(t *testing.T) {
	glass := NewDielectric(1.5)
	dir := core.NewVec3(1, -1, 0).Unit()
	hit := &HitRecord{Normal: core.NewVec3(0, 1, 0), FrontFace: true}

	sampler := &fixedSampler{values: []float64{0.999}}
	result, _ := glass.Scatter(core.NewRay(core.NewVec3(0, 1, 0), dir), hit, sampler)

	out := result.Scattered.Direction.Unit()
	if out.Y >= 0 {
		t.Fatalf("Refracted ray should continue below the surface, got %v", out)
	}
	if math.Abs(out.X) >= math.Abs(dir.X) {
		t.Errorf("Refracted ray should bend toward the normal: in %v out %v", dir, out)
	}
}

func TestReflectance(t *testing.T) {
	tests := []struct {
		name     string
		cosine   float64
		ratio    float64
		expected float64
	}{
		{"normal incidence glass", 1.0, 1.0 / 1.5, 0.04},
		{"grazing incidence", 0.0, 1.0 / 1.5, 1.0},
		{"matched index normal incidence", 1.0, 1.0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reflectance(tt.cosine, tt.ratio); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected reflectance %f, got %f", tt.expected, got)
			}
		})
	}
}
