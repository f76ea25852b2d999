package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-weekend-raytracer/pkg/geometry"
	"github.com/df07/go-weekend-raytracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name   string
	World  *geometry.HittableList // Objects in the scene
	Camera *renderer.Camera       // Camera with the scene's default settings
}

// defaultSeed is used by registered scenes built from random choices
const defaultSeed int64 = 42

var builders = map[string]func() *Scene{
	"default":    NewDefaultScene,
	"materials":  NewMaterialsScene,
	"spheregrid": func() *Scene { return NewSphereGridScene(defaultSeed) },
}

// Names returns the registered scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Create builds the named scene
func Create(name string) (*Scene, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (available: %v)", name, Names())
	}
	return build(), nil
}
