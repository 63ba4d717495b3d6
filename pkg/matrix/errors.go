package matrix

import "errors"

var (
	// ErrBadShape is returned when a size is below 1 or the value count does not fill n×n
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrSingular is returned when inverting a matrix whose determinant is zero
	ErrSingular = errors.New("matrix: singular matrix")
)
