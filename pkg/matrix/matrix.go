// Package matrix implements square matrices of any size over core.Float scalars.
//
// Values are immutable: setters return a new matrix. A transposed view shares
// storage with the matrix it was taken from. Determinant and inverse are
// computed at most once per value.
package matrix

import (
	"fmt"
	"strings"
	"sync"

	"github.com/df07/go-raytracer-challenge/pkg/core"
)

// Matrix is an n×n grid stored row-major, optionally viewed transposed
type Matrix[T core.Float] struct {
	n          int
	data       []T
	transposed bool
	memo       *memo[T]
}

// memo holds lazily computed derived values of one matrix value
type memo[T core.Float] struct {
	detOnce sync.Once
	det     T

	invOnce sync.Once
	inv     Matrix[T]
	invErr  error
}

// New creates an n×n matrix from row-major values. No values means a zero matrix.
func New[T core.Float](n int, values ...T) (Matrix[T], error) {
	if n < 1 {
		return Matrix[T]{}, fmt.Errorf("size %d: %w", n, ErrBadShape)
	}
	data := make([]T, n*n)
	if len(values) > 0 {
		if len(values) != n*n {
			return Matrix[T]{}, fmt.Errorf("%d values for a %dx%d matrix: %w", len(values), n, n, ErrBadShape)
		}
		copy(data, values)
	}
	return fromData(n, data), nil
}

// MustNew is like New but panics on a bad shape
func MustNew[T core.Float](n int, values ...T) Matrix[T] {
	m, err := New(n, values...)
	if err != nil {
		panic(err)
	}
	return m
}

// FromRows creates a matrix from a square slice of rows
func FromRows[T core.Float](rows [][]T) (Matrix[T], error) {
	n := len(rows)
	values := make([]T, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return Matrix[T]{}, fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), n, ErrBadShape)
		}
		values = append(values, row...)
	}
	return New(n, values...)
}

// Identity returns the n×n identity matrix
func Identity[T core.Float](n int) Matrix[T] {
	m := Zero[T](n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	return m
}

// Zero returns the n×n zero matrix
func Zero[T core.Float](n int) Matrix[T] {
	return MustNew[T](n)
}

func fromData[T core.Float](n int, data []T) Matrix[T] {
	return Matrix[T]{n: n, data: data, memo: &memo[T]{}}
}

// Size returns n for an n×n matrix
func (m Matrix[T]) Size() int {
	return m.n
}

func (m Matrix[T]) checkIndex(row, col int) {
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		panic(fmt.Sprintf("matrix: index (%d, %d) out of range for %dx%d matrix", row, col, m.n, m.n))
	}
}

// At returns the logical element at (row, col), honouring the transposed view
func (m Matrix[T]) At(row, col int) T {
	m.checkIndex(row, col)
	if m.transposed {
		row, col = col, row
	}
	return m.data[row*m.n+col]
}

// OriginalAt returns the physically stored element at (row, col)
func (m Matrix[T]) OriginalAt(row, col int) T {
	m.checkIndex(row, col)
	return m.data[row*m.n+col]
}

// WithValueAt returns a copy with the logical element at (row, col) replaced
func (m Matrix[T]) WithValueAt(row, col int, value T) Matrix[T] {
	m.checkIndex(row, col)
	if m.transposed {
		row, col = col, row
	}
	return m.withPhysical(row, col, value)
}

// WithOriginalValueAt returns a copy with the physically stored element at (row, col) replaced
func (m Matrix[T]) WithOriginalValueAt(row, col int, value T) Matrix[T] {
	m.checkIndex(row, col)
	return m.withPhysical(row, col, value)
}

func (m Matrix[T]) withPhysical(row, col int, value T) Matrix[T] {
	data := make([]T, len(m.data))
	copy(data, m.data)
	data[row*m.n+col] = value
	out := fromData(m.n, data)
	out.transposed = m.transposed
	return out
}

// Row returns a copy of the logical row
func (m Matrix[T]) Row(row int) []T {
	out := make([]T, m.n)
	for c := range out {
		out[c] = m.At(row, c)
	}
	return out
}

// Column returns a copy of the logical column
func (m Matrix[T]) Column(col int) []T {
	out := make([]T, m.n)
	for r := range out {
		out[r] = m.At(r, col)
	}
	return out
}

// Transposed returns a view of m with rows and columns swapped. Storage is shared.
func (m Matrix[T]) Transposed() Matrix[T] {
	return m.SetTransposed(!m.transposed)
}

// IsTransposed reports whether m is a transposed view of its storage
func (m Matrix[T]) IsTransposed() bool {
	return m.transposed
}

// SetTransposed returns a view of the same storage with the transposed flag set to t
func (m Matrix[T]) SetTransposed(t bool) Matrix[T] {
	if t == m.transposed && m.memo != nil {
		return m
	}
	return Matrix[T]{n: m.n, data: m.data, transposed: t, memo: &memo[T]{}}
}

func (m Matrix[T]) mustMatch(o Matrix[T], op string) {
	if m.n != o.n {
		panic(fmt.Sprintf("matrix: %s of %dx%d and %dx%d", op, m.n, m.n, o.n, o.n))
	}
}

// Multiply returns the matrix product m·o. It panics when sizes differ.
func (m Matrix[T]) Multiply(o Matrix[T]) Matrix[T] {
	m.mustMatch(o, "product")
	n := m.n
	data := make([]T, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			var sum T
			for k := 0; k < n; k++ {
				sum += m.At(r, k) * o.At(k, c)
			}
			data[r*n+c] = sum
		}
	}
	return fromData(n, data)
}

// Add returns the element-wise sum. It panics when sizes differ.
func (m Matrix[T]) Add(o Matrix[T]) Matrix[T] {
	m.mustMatch(o, "sum")
	n := m.n
	data := make([]T, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			data[r*n+c] = m.At(r, c) + o.At(r, c)
		}
	}
	return fromData(n, data)
}

// MultiplyTuple returns t mapped through a 4×4 matrix: r[i] = Σ_j m[i][j]·t[j]
func (m Matrix[T]) MultiplyTuple(t core.Tuple[T]) core.Tuple[T] {
	if m.n != 4 {
		panic(fmt.Sprintf("matrix: tuple product needs a 4x4 matrix, got %dx%d", m.n, m.n))
	}
	in := [4]T{t.X, t.Y, t.Z, t.W}
	var out [4]T
	for r := 0; r < 4; r++ {
		out[r] = m.At(r, 0)*in[0] + m.At(r, 1)*in[1] + m.At(r, 2)*in[2] + m.At(r, 3)*in[3]
	}
	return core.NewTuple(out[0], out[1], out[2], out[3])
}

// Equals compares the logical elements within core.Epsilon
func (m Matrix[T]) Equals(o Matrix[T]) bool {
	return m.EqualsWithin(o, core.Epsilon[T]())
}

// EqualsWithin compares the logical elements within tolerance
func (m Matrix[T]) EqualsWithin(o Matrix[T], tolerance T) bool {
	if m.n != o.n {
		return false
	}
	for r := 0; r < m.n; r++ {
		for c := 0; c < m.n; c++ {
			if !core.EqualsWithin(m.At(r, c), o.At(r, c), tolerance) {
				return false
			}
		}
	}
	return true
}

// String formats the logical rows, one per line
func (m Matrix[T]) String() string {
	var sb strings.Builder
	for r := 0; r < m.n; r++ {
		sb.WriteString("|")
		for c := 0; c < m.n; c++ {
			fmt.Fprintf(&sb, " %10.5f", float64(m.At(r, c)))
		}
		sb.WriteString(" |\n")
	}
	return sb.String()
}
