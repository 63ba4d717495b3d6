package geometry

import (
	"fmt"

	"github.com/df07/go-raytracer-challenge/pkg/core"
	"github.com/df07/go-raytracer-challenge/pkg/material"
)

// Kind tags the closed set of primitive shapes
type Kind int

const (
	KindSphere Kind = iota
	KindCube
	KindPlane
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindCube:
		return "cube"
	case KindPlane:
		return "plane"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Shape interface for objects that can be hit by rays and shaded
type Shape[T core.Float] interface {
	Kind() Kind
	Intersect(ray Ray[T]) RayHit[T]
	NormalAt(point core.Point[T]) (core.Vector[T], error)
	Material() material.Material[T]
}

// Intersect dispatches on the concrete shape. Kinds without an
// implementation return ErrUnsupportedShape.
func Intersect[T core.Float](ray Ray[T], shape Shape[T]) (RayHit[T], error) {
	switch s := shape.(type) {
	case *Sphere[T]:
		return s.Intersect(ray), nil
	case nil:
		return RayHit[T]{}, fmt.Errorf("nil shape: %w", ErrUnsupportedShape)
	}
	return RayHit[T]{}, fmt.Errorf("%s: %w", shape.Kind(), ErrUnsupportedShape)
}

// HitRecord contains information about a ray-object intersection
type HitRecord[T core.Float] struct {
	Distance  T              // Parameter t along the ray
	Point     core.Point[T]  // Point of intersection
	Normal    core.Vector[T] // Surface normal facing the ray
	Eye       core.Vector[T] // Direction the ray travelled
	FrontFace bool           // Whether ray hit the front face
	Shape     Shape[T]
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord[T]) SetFaceNormal(ray Ray[T], outwardNormal core.Vector[T]) {
	h.Eye = ray.Direction
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
