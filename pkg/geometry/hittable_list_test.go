package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-weekend-raytracer/pkg/core"
	"github.com/df07/go-weekend-raytracer/pkg/material"
)

func TestHittableList_Empty(t *testing.T) {
	list := NewHittableList()
	if _, isHit := list.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), positiveT); isHit {
		t.Error("Empty list should never report a hit")
	}
}

func TestHittableList_ReturnsClosestHit(t *testing.T) {
	near := material.NewLambertian(core.NewVec3(1, 0, 0))
	far := material.NewLambertian(core.NewVec3(0, 0, 1))

	tests := []struct {
		name  string
		order []Hittable
	}{
		{
			name: "near added first",
			order: []Hittable{
				NewSphere(core.NewVec3(0, 0, -2), 0.5, near),
				NewSphere(core.NewVec3(0, 0, -5), 0.5, far),
			},
		},
		{
			name: "far added first",
			order: []Hittable{
				NewSphere(core.NewVec3(0, 0, -5), 0.5, far),
				NewSphere(core.NewVec3(0, 0, -2), 0.5, near),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list := NewHittableList(tt.order...)
			hit, isHit := list.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), positiveT)

			if !isHit {
				t.Fatal("Expected hit, but got miss")
			}
			if math.Abs(hit.T-1.5) > 1e-9 {
				t.Errorf("Expected nearest t=1.5, got %f", hit.T)
			}
			if hit.Material != near {
				t.Errorf("Expected material of the nearest sphere")
			}
		})
	}
}

func TestHittableList_TieGoesToFirstAdded(t *testing.T) {
	first := material.NewLambertian(core.NewVec3(1, 0, 0))
	second := material.NewLambertian(core.NewVec3(0, 1, 0))

	list := NewHittableList()
	list.Add(NewSphere(core.NewVec3(0, 0, -2), 0.5, first))
	list.Add(NewSphere(core.NewVec3(0, 0, -2), 0.5, second))

	hit, isHit := list.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), positiveT)
	if !isHit {
		t.Fatal("Expected hit, but got miss")
	}
	if hit.Material != first {
		t.Errorf("Expected first-added object to win an exact tie")
	}
}

func TestHittableList_RespectsInterval(t *testing.T) {
	list := NewHittableList(NewSphere(core.NewVec3(0, 0, -2), 0.5, nil))
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	if _, isHit := list.Hit(ray, core.NewInterval(0, 1)); isHit {
		t.Error("Expected miss when sphere lies beyond interval max")
	}
}

func TestHittableList_AddClear(t *testing.T) {
	list := NewHittableList()
	list.Add(NewSphere(core.NewVec3(0, 0, -1), 0.5, nil))
	list.Add(NewSphere(core.NewVec3(0, -100.5, -1), 100, nil))

	if list.Len() != 2 || len(list.Objects()) != 2 {
		t.Fatalf("Expected 2 objects, got %d", list.Len())
	}

	list.Clear()
	if list.Len() != 0 {
		t.Errorf("Expected empty list after Clear, got %d", list.Len())
	}
}
