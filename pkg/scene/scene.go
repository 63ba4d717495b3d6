package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/df07/go-raytracer-challenge/pkg/core"
	"github.com/df07/go-raytracer-challenge/pkg/geometry"
	"github.com/df07/go-raytracer-challenge/pkg/material"
	"github.com/df07/go-raytracer-challenge/pkg/renderer"
	"github.com/df07/go-raytracer-challenge/pkg/transform"
	"github.com/df07/go-raytracer-challenge/pkg/world"
)

var (
	// ErrUnknownScene is returned when no built-in scene has the requested name
	ErrUnknownScene = errors.New("scene: unknown scene")
	// ErrInvalidScene is returned by Validate for a scene that cannot be rendered
	ErrInvalidScene = errors.New("scene: invalid scene")
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name   string
	World  *world.World[float64]
	Camera *renderer.Camera[float64]
	Width  int // Image width
	Height int // Image height
}

// New creates an empty scene with the default camera
func New(name string, width, height int) *Scene {
	return &Scene{
		Name:   name,
		World:  world.New[float64](nil),
		Camera: renderer.NewDefaultCamera[float64](),
		Width:  width,
		Height: height,
	}
}

// AddSphere adds a sphere to the world. A nil material keeps the default Phong material.
func (s *Scene) AddSphere(radius float64, position core.Point[float64], t transform.Transform[float64], mat material.Material[float64]) (world.ObjectID, error) {
	sphere, err := geometry.NewSphere(radius, position)
	if err != nil {
		return 0, err
	}
	sphere.SetTransform(t)
	if mat != nil {
		sphere.SetMaterial(mat)
	}
	return s.World.Add(sphere), nil
}

// AddLight adds a point light to the world
func (s *Scene) AddLight(position core.Point[float64], intensity core.Color[float64]) {
	s.World.AddLight(material.NewLightOmni(position, intensity))
}

// Validate checks the scene can be handed to a renderer
func (s *Scene) Validate() error {
	switch {
	case s.World == nil:
		return fmt.Errorf("%q has no world: %w", s.Name, ErrInvalidScene)
	case s.Camera == nil:
		return fmt.Errorf("%q has no camera: %w", s.Name, ErrInvalidScene)
	case s.Width < 1 || s.Height < 1:
		return fmt.Errorf("%q has size %dx%d: %w", s.Name, s.Width, s.Height, ErrInvalidScene)
	}
	return nil
}

type builtin struct {
	info   SceneInfo
	create func() *Scene
}

var builtins = []builtin{
	{
		info: SceneInfo{
			ID:          "default",
			Name:        "Default Scene",
			Description: "Purple sphere lit from behind and to the left",
		},
		create: NewDefaultScene,
	},
	{
		info: SceneInfo{
			ID:          "transformed",
			Name:        "Transformed Spheres",
			Description: "Scaled, rotated and sheared spheres under two lights",
		},
		create: NewTransformedScene,
	},
	{
		info: SceneInfo{
			ID:          "projectile",
			Name:        "Projectile",
			Description: "Trajectory of a projectile drawn as a trail of spheres",
		},
		create: NewProjectileScene,
	},
}

// Builtin creates the built-in scene registered under name
func Builtin(name string) (*Scene, error) {
	for _, b := range builtins {
		if b.info.ID == name {
			return b.create(), nil
		}
	}
	return nil, fmt.Errorf("%q: %w", name, ErrUnknownScene)
}

// BuiltinNames returns the names accepted by Builtin, sorted
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for _, b := range builtins {
		names = append(names, b.info.ID)
	}
	sort.Strings(names)
	return names
}
