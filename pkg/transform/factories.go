package transform

import (
	"github.com/df07/go-raytracer-challenge/pkg/core"
	"github.com/df07/go-raytracer-challenge/pkg/matrix"
)

func fromValues[T core.Float](values ...T) Transform[T] {
	return Transform[T]{m: matrix.MustNew(4, values...)}
}

// Translation moves points by (x, y, z)
func Translation[T core.Float](x, y, z T) Transform[T] {
	return fromValues(
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, z,
		0, 0, 0, 1,
	)
}

// Scaling scales each axis independently
func Scaling[T core.Float](x, y, z T) Transform[T] {
	return fromValues(
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, z, 0,
		0, 0, 0, 1,
	)
}

// RotationX rotates by angle radians about the X axis (right-handed)
func RotationX[T core.Float](angle T) Transform[T] {
	s, c := core.Sincos(angle)
	return fromValues(
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	)
}

// RotationY rotates by angle radians about the Y axis (right-handed)
func RotationY[T core.Float](angle T) Transform[T] {
	s, c := core.Sincos(angle)
	return fromValues(
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	)
}

// RotationZ rotates by angle radians about the Z axis (right-handed)
func RotationZ[T core.Float](angle T) Transform[T] {
	s, c := core.Sincos(angle)
	return fromValues(
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Rotation composes Euler rotations: X is applied first, then Y, then Z
func Rotation[T core.Float](rx, ry, rz T) Transform[T] {
	return Chain(RotationX(rx), RotationY(ry), RotationZ(rz))
}

// Shearing moves each coordinate in proportion to the other two.
// xy is the change of x in proportion to y, and so on.
func Shearing[T core.Float](xy, xz, yx, yz, zx, zy T) Transform[T] {
	return fromValues(
		1, xy, xz, 0,
		yx, 1, yz, 0,
		zx, zy, 1, 0,
		0, 0, 0, 1,
	)
}
