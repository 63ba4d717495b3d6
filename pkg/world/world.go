// Package world groups shapes and lights into a scene that rays can be cast into.
package world

import (
	"errors"
	"sort"

	"github.com/df07/go-raytracer-challenge/pkg/core"
	"github.com/df07/go-raytracer-challenge/pkg/geometry"
	"github.com/df07/go-raytracer-challenge/pkg/material"
)

// Object is a shape registered in a world
type Object[T core.Float] struct {
	ID    ObjectID
	Class ClassID
	Shape geometry.Shape[T]
}

// Intersection is one root of a ray against one object
type Intersection[T core.Float] struct {
	Distance T
	Point    core.Point[T]
	Object   Object[T]
}

// World holds the objects and lights of a scene
type World[T core.Float] struct {
	registry *Registry
	objects  []Object[T]
	lights   []material.LightOmni[T]
}

// New creates an empty world numbering its objects through registry.
// A nil registry gets a private one.
func New[T core.Float](registry *Registry) *World[T] {
	if registry == nil {
		registry = NewRegistry()
	}
	return &World[T]{registry: registry}
}

// Registry returns the id source of the world
func (w *World[T]) Registry() *Registry {
	return w.registry
}

// Add registers shape and returns its object id
func (w *World[T]) Add(shape geometry.Shape[T]) ObjectID {
	obj := Object[T]{
		ID:    w.registry.NextObjectID(),
		Class: w.registry.ClassID(shape.Kind()),
		Shape: shape,
	}
	w.objects = append(w.objects, obj)
	return obj.ID
}

// Remove drops the object with the given id. It reports whether it was present.
func (w *World[T]) Remove(id ObjectID) bool {
	for i, obj := range w.objects {
		if obj.ID == id {
			w.objects = append(w.objects[:i], w.objects[i+1:]...)
			return true
		}
	}
	return false
}

// Objects returns the registered objects in insertion order
func (w *World[T]) Objects() []Object[T] {
	return w.objects
}

// NumObjects returns how many objects the world holds
func (w *World[T]) NumObjects() int {
	return len(w.objects)
}

// NumObjectsOfType counts the objects of one class
func (w *World[T]) NumObjectsOfType(class ClassID) int {
	n := 0
	for _, obj := range w.objects {
		if obj.Class == class {
			n++
		}
	}
	return n
}

// AddLight adds a point light
func (w *World[T]) AddLight(light material.LightOmni[T]) {
	w.lights = append(w.lights, light)
}

// Lights returns the lights of the world
func (w *World[T]) Lights() []material.LightOmni[T] {
	return w.lights
}

// Intersect casts ray against every object and returns all roots, negative
// ones included, in ascending distance. Objects whose kind has no
// intersection routine are skipped.
func (w *World[T]) Intersect(ray geometry.Ray[T]) []Intersection[T] {
	var xs []Intersection[T]
	for _, obj := range w.objects {
		hit, err := geometry.Intersect(ray, obj.Shape)
		if err != nil {
			if errors.Is(err, geometry.ErrUnsupportedShape) {
				core.Log().Warn("skipping object", "id", int(obj.ID), "err", err)
				continue
			}
			core.Log().Debug("intersection failed", "id", int(obj.ID), "err", err)
			continue
		}
		for i, t := range hit.NegativeDistances {
			xs = append(xs, Intersection[T]{Distance: t, Point: hit.NegativePoints[i], Object: obj})
		}
		for i, t := range hit.Distances {
			xs = append(xs, Intersection[T]{Distance: t, Point: hit.Points[i], Object: obj})
		}
	}
	sort.SliceStable(xs, func(i, j int) bool { return xs[i].Distance < xs[j].Distance })
	return xs
}

// Hit returns the nearest intersection with a non-negative distance
func Hit[T core.Float](xs []Intersection[T]) (Intersection[T], bool) {
	for _, x := range xs {
		if x.Distance >= 0 {
			return x, true
		}
	}
	return Intersection[T]{}, false
}

// ColorAt shades the nearest visible surface along ray with every light.
// There are no shadows and no secondary rays. A miss returns black.
func (w *World[T]) ColorAt(ray geometry.Ray[T]) core.Color[T] {
	c, _ := w.Trace(ray)
	return c
}

// Trace is ColorAt that also reports whether any surface was hit
func (w *World[T]) Trace(ray geometry.Ray[T]) (core.Color[T], bool) {
	if err := ray.Normalize(); err != nil {
		return core.Black[T](), false
	}
	x, rec, ok := w.Inspect(ray)
	if !ok {
		return core.Black[T](), false
	}
	if rec.Shape == nil {
		core.Log().Debug("no surface normal", "id", int(x.Object.ID))
		return core.Black[T](), true
	}

	mat := rec.Shape.Material()
	if mat == nil {
		return core.Black[T](), true
	}

	var r, g, b T
	for _, light := range w.lights {
		c := mat.Shade(light, rec.Point, rec.Normal, ray.Origin, rec.Eye)
		r, g, b = r+c.R(), g+c.G(), b+c.B()
	}
	return core.NewColor(r, g, b, mat.BaseColor().A()), true
}

// Inspect finds the nearest visible intersection along ray and the surface
// record used to shade it. The record's Shape is nil when no normal exists
// at the hit point.
func (w *World[T]) Inspect(ray geometry.Ray[T]) (Intersection[T], geometry.HitRecord[T], bool) {
	if err := ray.Normalize(); err != nil {
		return Intersection[T]{}, geometry.HitRecord[T]{}, false
	}
	x, ok := Hit(w.Intersect(ray))
	if !ok {
		return x, geometry.HitRecord[T]{}, false
	}
	rec, err := w.prepare(ray, x)
	if err != nil {
		return x, geometry.HitRecord[T]{Distance: x.Distance, Point: x.Point}, true
	}
	return x, rec, true
}

func (w *World[T]) prepare(ray geometry.Ray[T], x Intersection[T]) (geometry.HitRecord[T], error) {
	rec := geometry.HitRecord[T]{
		Distance: x.Distance,
		Point:    x.Point,
		Shape:    x.Object.Shape,
	}
	normal, err := x.Object.Shape.NormalAt(x.Point)
	if err != nil {
		return rec, err
	}
	rec.SetFaceNormal(ray, normal)
	return rec, nil
}
