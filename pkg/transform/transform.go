// Package transform builds affine transforms in homogeneous coordinates on
// top of 4×4 matrices.
//
// A transform maps a tuple t to M·t. Translation lives in column 3, rows 0-2,
// so it only moves tuples with w = 1.
package transform

import (
	"errors"
	"fmt"

	"github.com/df07/go-raytracer-challenge/pkg/core"
	"github.com/df07/go-raytracer-challenge/pkg/matrix"
)

// ErrNotHomogeneous is returned when wrapping a matrix that is not 4×4
var ErrNotHomogeneous = errors.New("transform: matrix is not 4x4")

// Transform is an affine map stored as a 4×4 matrix
type Transform[T core.Float] struct {
	m matrix.Matrix[T]
}

// FromMatrix wraps a 4×4 matrix
func FromMatrix[T core.Float](m matrix.Matrix[T]) (Transform[T], error) {
	if m.Size() != 4 {
		return Transform[T]{}, fmt.Errorf("%dx%d: %w", m.Size(), m.Size(), ErrNotHomogeneous)
	}
	return Transform[T]{m: m}, nil
}

// Identity returns the transform that leaves every tuple unchanged
func Identity[T core.Float]() Transform[T] {
	return Transform[T]{m: matrix.Identity[T](4)}
}

// Matrix returns the underlying 4×4 matrix. A zero Transform reports the identity.
func (t Transform[T]) Matrix() matrix.Matrix[T] {
	if t.m.Size() == 0 {
		return matrix.Identity[T](4)
	}
	return t.m
}

// Multiply returns the matrix product t·o. Applied to a tuple, o acts first.
func (t Transform[T]) Multiply(o Transform[T]) Transform[T] {
	return Transform[T]{m: t.Matrix().Multiply(o.Matrix())}
}

// Then returns the transform applying t first and next afterwards
func (t Transform[T]) Then(next Transform[T]) Transform[T] {
	return next.Multiply(t)
}

// Chain composes transforms so the left-most argument applies first.
// Chain(a, b, c) maps v like c·b·a·v.
func Chain[T core.Float](ts ...Transform[T]) Transform[T] {
	out := Identity[T]()
	for _, t := range ts {
		out = out.Then(t)
	}
	return out
}

// ApplyTuple maps a raw tuple; translation only affects w = 1
func (t Transform[T]) ApplyTuple(tp core.Tuple[T]) core.Tuple[T] {
	return t.Matrix().MultiplyTuple(tp)
}

// ApplyPoint maps a position
func (t Transform[T]) ApplyPoint(p core.Point[T]) core.Point[T] {
	return core.PointFromTuple(t.ApplyTuple(p.Tuple()))
}

// ApplyVector maps a direction, ignoring translation
func (t Transform[T]) ApplyVector(v core.Vector[T]) core.Vector[T] {
	return core.VectorFromTuple(t.ApplyTuple(v.Tuple()))
}

// Inverse returns the inverse transform, or matrix.ErrSingular
func (t Transform[T]) Inverse() (Transform[T], error) {
	inv, err := t.Matrix().Inverse()
	if err != nil {
		return Transform[T]{}, err
	}
	return Transform[T]{m: inv}, nil
}

// InverseTranspose returns (M⁻¹)ᵀ, the matrix that maps surface normals
func (t Transform[T]) InverseTranspose() (Transform[T], error) {
	inv, err := t.Inverse()
	if err != nil {
		return Transform[T]{}, err
	}
	return Transform[T]{m: inv.m.Transposed()}, nil
}

// Rotation returns the upper-left 3×3 block (rotation, scale and shear)
// embedded in an identity transform
func (t Transform[T]) Rotation() Transform[T] {
	m := t.Matrix()
	out := matrix.Identity[T](4)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out = out.WithValueAt(r, c, m.At(r, c))
		}
	}
	return Transform[T]{m: out}
}

// TranslationPart returns only the translation of t
func (t Transform[T]) TranslationPart() Transform[T] {
	v := t.TranslationVector()
	return Translation(v.X, v.Y, v.Z)
}

// TranslationVector returns the offset t applies to points
func (t Transform[T]) TranslationVector() core.Vector[T] {
	m := t.Matrix()
	return core.NewVector(m.At(0, 3), m.At(1, 3), m.At(2, 3))
}

// Equals compares the matrices within core.Epsilon
func (t Transform[T]) Equals(o Transform[T]) bool {
	return t.Matrix().Equals(o.Matrix())
}

// EqualsWithin compares the matrices within tolerance
func (t Transform[T]) EqualsWithin(o Transform[T], tolerance T) bool {
	return t.Matrix().EqualsWithin(o.Matrix(), tolerance)
}

// String implements fmt.Stringer
func (t Transform[T]) String() string {
	return t.Matrix().String()
}
