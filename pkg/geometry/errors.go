package geometry

import "errors"

var (
	// ErrNegativeRadius is returned when a sphere is given a radius below zero
	ErrNegativeRadius = errors.New("geometry: negative radius")

	// ErrUnsupportedShape is returned when intersecting a shape kind with no implementation
	ErrUnsupportedShape = errors.New("geometry: unsupported shape")
)
