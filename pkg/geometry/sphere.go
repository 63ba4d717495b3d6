package geometry

import (
	"fmt"

	"github.com/df07/go-raytracer-challenge/pkg/core"
	"github.com/df07/go-raytracer-challenge/pkg/material"
	"github.com/df07/go-raytracer-challenge/pkg/transform"
)

// Sphere represents a sphere shape placed by a position and an affine transform
type Sphere[T core.Float] struct {
	radius    T
	position  core.Point[T]
	transform transform.Transform[T]
	material  material.Material[T]

	// derived from transform by SetTransform
	toLocal  transform.Transform[T]
	toWorld  transform.Transform[T]
	localErr error
}

// NewSphere creates a new sphere with the default Phong material
func NewSphere[T core.Float](radius T, position core.Point[T]) (*Sphere[T], error) {
	if radius < 0 {
		return nil, fmt.Errorf("radius %g: %w", float64(radius), ErrNegativeRadius)
	}
	s := &Sphere[T]{
		radius:   radius,
		position: position,
		material: material.DefaultPhong[T](),
	}
	s.SetTransform(transform.Identity[T]())
	return s, nil
}

// NewUnitSphere creates a sphere of radius 1 at the origin
func NewUnitSphere[T core.Float]() *Sphere[T] {
	s, _ := NewSphere[T](1, core.Point[T]{})
	return s
}

// Kind implements the Shape interface
func (s *Sphere[T]) Kind() Kind { return KindSphere }

func (s *Sphere[T]) Radius() T { return s.radius }

// SetRadius validates and stores a new radius
func (s *Sphere[T]) SetRadius(radius T) error {
	if radius < 0 {
		return fmt.Errorf("radius %g: %w", float64(radius), ErrNegativeRadius)
	}
	s.radius = radius
	return nil
}

// Position returns the untransformed center
func (s *Sphere[T]) Position() core.Point[T] {
	return s.position
}

func (s *Sphere[T]) SetPosition(p core.Point[T]) {
	s.position = p
}

// Transform returns the object transform; the zero value acts as identity
func (s *Sphere[T]) Transform() transform.Transform[T] {
	return s.transform
}

// SetTransform stores t and precomputes the maps between world and local
// space. A singular t is kept; the sphere then reports no hits and normal
// errors.
func (s *Sphere[T]) SetTransform(t transform.Transform[T]) {
	s.transform = t
	s.toLocal, s.toWorld, s.localErr = transform.Transform[T]{}, transform.Transform[T]{}, nil

	linear := t.Rotation()
	toLocal, err := linear.Inverse()
	if err != nil {
		s.localErr = err
		return
	}
	toWorld, err := linear.InverseTranspose()
	if err != nil {
		s.localErr = err
		return
	}
	s.toLocal, s.toWorld = toLocal, toWorld
}

// Material implements the Shape interface
func (s *Sphere[T]) Material() material.Material[T] { return s.material }

// SetMaterial attaches m; the same material may be shared between shapes
func (s *Sphere[T]) SetMaterial(m material.Material[T]) { s.material = m }

// Center returns the world position of the center: position moved by the
// transform's translation
func (s *Sphere[T]) Center() core.Point[T] {
	return s.position.Add(s.transform.TranslationVector())
}

// Intersect tests the ray against the sphere. Distances are measured along
// the normalized ray; a ray with no direction hits nothing.
func (s *Sphere[T]) Intersect(ray Ray[T]) RayHit[T] {
	var hit RayHit[T]
	if err := ray.Normalize(); err != nil {
		core.Log().Debug("skipping sphere intersection", "err", err)
		return hit
	}

	if s.localErr != nil {
		core.Log().Debug("sphere transform is singular", "err", s.localErr)
		return hit
	}

	// Move the sphere to the origin and undo its rotation and scale
	origin := s.toLocal.ApplyVector(ray.Origin.Subtract(s.Center()))
	direction := s.toLocal.ApplyVector(ray.Direction)

	a := direction.Dot(direction)
	b := 2 * direction.Dot(origin)
	c := origin.Dot(origin) - s.radius*s.radius

	for _, t := range SolveQuadratic(a, b, c) {
		hit.add(t, ray.Position(t))
	}
	return hit
}

// NormalAt returns the outward unit normal at a world-space point on the surface
func (s *Sphere[T]) NormalAt(point core.Point[T]) (core.Vector[T], error) {
	if s.localErr != nil {
		return core.Vector[T]{}, fmt.Errorf("sphere normal: %w", s.localErr)
	}

	localNormal := s.toLocal.ApplyVector(point.Subtract(s.Center()))

	// Normals map back through the inverse transpose
	n, err := s.toWorld.ApplyVector(localNormal).TryNormalize()
	if err != nil {
		return core.Vector[T]{}, fmt.Errorf("sphere normal at %v: %w", point, err)
	}
	return n, nil
}
