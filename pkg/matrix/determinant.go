package matrix

import (
	"fmt"

	"github.com/df07/go-raytracer-challenge/pkg/core"
)

// Submatrix returns the (n-1)×(n-1) matrix left after deleting row and col
// from the logical view
func (m Matrix[T]) Submatrix(row, col int) Matrix[T] {
	m.checkIndex(row, col)
	if m.n < 2 {
		panic(fmt.Sprintf("matrix: no submatrix of a %dx%d matrix", m.n, m.n))
	}
	n := m.n - 1
	data := make([]T, 0, n*n)
	for r := 0; r < m.n; r++ {
		if r == row {
			continue
		}
		for c := 0; c < m.n; c++ {
			if c == col {
				continue
			}
			data = append(data, m.At(r, c))
		}
	}
	return fromData(n, data)
}

// Minor returns the determinant of Submatrix(row, col)
func (m Matrix[T]) Minor(row, col int) T {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor returns the minor at (row, col) signed by (-1)^(row+col)
func (m Matrix[T]) Cofactor(row, col int) T {
	minor := m.Minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// Cofactors returns the matrix of all cofactors
func (m Matrix[T]) Cofactors() Matrix[T] {
	data := make([]T, m.n*m.n)
	if m.n == 1 {
		data[0] = 1
		return fromData(1, data)
	}
	for r := 0; r < m.n; r++ {
		for c := 0; c < m.n; c++ {
			data[r*m.n+c] = m.Cofactor(r, c)
		}
	}
	return fromData(m.n, data)
}

// Determinant returns det(m). The result is computed once per matrix value.
func (m Matrix[T]) Determinant() T {
	if m.memo == nil {
		return m.determinant()
	}
	m.memo.detOnce.Do(func() {
		m.memo.det = m.determinant()
	})
	return m.memo.det
}

func (m Matrix[T]) determinant() T {
	switch m.n {
	case 0:
		return 1
	case 1:
		return m.At(0, 0)
	case 2:
		return m.At(0, 0)*m.At(1, 1) - m.At(0, 1)*m.At(1, 0)
	case 3:
		return det3(
			m.At(0, 0), m.At(0, 1), m.At(0, 2),
			m.At(1, 0), m.At(1, 1), m.At(1, 2),
			m.At(2, 0), m.At(2, 1), m.At(2, 2),
		)
	case 4:
		return m.determinant4()
	}

	// Laplace expansion along row 0
	var det T
	for c := 0; c < m.n; c++ {
		a := m.At(0, c)
		if a == 0 {
			continue
		}
		term := a * m.Minor(0, c)
		if c%2 == 1 {
			term = -term
		}
		det += term
	}
	return det
}

// determinant4 expands along row 0 with each 3×3 minor written out
func (m Matrix[T]) determinant4() T {
	a, b, c, d := m.At(0, 0), m.At(0, 1), m.At(0, 2), m.At(0, 3)
	e, f, g, h := m.At(1, 0), m.At(1, 1), m.At(1, 2), m.At(1, 3)
	i, j, k, l := m.At(2, 0), m.At(2, 1), m.At(2, 2), m.At(2, 3)
	p, q, r, s := m.At(3, 0), m.At(3, 1), m.At(3, 2), m.At(3, 3)

	return a*det3(f, g, h, j, k, l, q, r, s) -
		b*det3(e, g, h, i, k, l, p, r, s) +
		c*det3(e, f, h, i, j, l, p, q, s) -
		d*det3(e, f, g, i, j, k, p, q, r)
}

func det3[T core.Float](a, b, c, d, e, f, g, h, i T) T {
	return a*(e*i-f*h) - b*(d*i-f*g) + c*(d*h-e*g)
}

// IsInvertible reports whether the determinant is non-zero within epsilon
func (m Matrix[T]) IsInvertible() bool {
	return !core.Equals(m.Determinant(), 0)
}
