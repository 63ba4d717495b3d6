package matrix

import "github.com/df07/go-raytracer-challenge/pkg/core"

// Inverse returns the inverse of m by the adjugate method, or ErrSingular.
// The result is computed once per matrix value.
func (m Matrix[T]) Inverse() (Matrix[T], error) {
	if m.memo == nil {
		return m.inverse()
	}
	m.memo.invOnce.Do(func() {
		m.memo.inv, m.memo.invErr = m.inverse()
	})
	return m.memo.inv, m.memo.invErr
}

// InverseOrIdentity returns the inverse of m, or the identity when m is singular
func (m Matrix[T]) InverseOrIdentity() Matrix[T] {
	inv, err := m.Inverse()
	if err != nil {
		return Identity[T](m.n)
	}
	return inv
}

func (m Matrix[T]) inverse() (Matrix[T], error) {
	if m.n < 1 {
		return Matrix[T]{}, ErrBadShape
	}
	det := m.Determinant()
	if core.Equals(det, 0) {
		core.Log().Debug("matrix not invertible", "size", m.n, "determinant", float64(det))
		return Matrix[T]{}, ErrSingular
	}

	n := m.n
	data := make([]T, n*n)
	if n == 1 {
		data[0] = 1 / det
		return fromData(n, data), nil
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			// transpose of the cofactor matrix
			data[c*n+r] = m.Cofactor(r, c) / det
		}
	}
	return fromData(n, data), nil
}
