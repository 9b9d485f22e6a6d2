package matfmt

import (
	"fmt"
)

// Scalar constrains matrix elements to the two numeric kinds the package
// renders: real and complex double precision.
type Scalar interface {
	float64 | complex128
}

// Matrix is an immutable dense matrix in row-major order. The zero value
// is the empty 0x0 matrix. Matrices hold values computed elsewhere; the
// package renders them as text and moves them through flat files, nothing
// more.
type Matrix[T Scalar] struct {
	rows, cols int
	data       []T // flat row-major storage, length == rows*cols
}

// New builds a rows x cols matrix. A nil data slice allocates zeros;
// otherwise data is copied and its length must equal rows*cols. Zero
// dimensions are legal and describe the empty matrix.
func New[T Scalar](rows, cols int, data []T) (*Matrix[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, rows, cols)
	}
	if data == nil {
		data = make([]T, rows*cols)
	} else if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: %d values into %dx%d", ErrBadShape, len(data), rows, cols)
	} else {
		owned := make([]T, len(data))
		copy(owned, data)
		data = owned
	}
	return &Matrix[T]{rows: rows, cols: cols, data: data}, nil
}

// FromRows builds a matrix from row slices. All rows must have the same
// length. No rows yields the empty matrix.
func FromRows[T Scalar](rows [][]T) (*Matrix[T], error) {
	if len(rows) == 0 {
		return &Matrix[T]{}, nil
	}
	cols := len(rows[0])
	data := make([]T, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrBadShape, i, len(row), cols)
		}
		data = append(data, row...)
	}
	return &Matrix[T]{rows: len(rows), cols: cols, data: data}, nil
}

// Rows returns the number of rows.
func (m *Matrix[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix[T]) Cols() int { return m.cols }

// At returns the element at row i, column j. It panics when the indices
// are out of range.
func (m *Matrix[T]) At(i, j int) T {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("matfmt: index (%d,%d) out of range for %dx%d matrix", i, j, m.rows, m.cols))
	}
	return m.data[i*m.cols+j]
}

// Row returns a copy of row i. It panics when i is out of range.
func (m *Matrix[T]) Row(i int) []T {
	if i < 0 || i >= m.rows {
		panic(fmt.Sprintf("matfmt: row %d out of range for %dx%d matrix", i, m.rows, m.cols))
	}
	row := make([]T, m.cols)
	copy(row, m.data[i*m.cols:(i+1)*m.cols])
	return row
}

// Data returns a copy of the backing storage in row-major order.
func (m *Matrix[T]) Data() []T {
	data := make([]T, len(m.data))
	copy(data, m.data)
	return data
}

// Reshape returns a new matrix over the same values with different
// dimensions. The element count must match.
func (m *Matrix[T]) Reshape(rows, cols int) (*Matrix[T], error) {
	if rows < 0 || cols < 0 || rows*cols != len(m.data) {
		return nil, fmt.Errorf("%w: %d values into %dx%d", ErrBadShape, len(m.data), rows, cols)
	}
	return &Matrix[T]{rows: rows, cols: cols, data: m.Data()}, nil
}

// Whole reports whether every entry is a whole number (both components
// for complex entries). Whole matrices display without fraction digits
// regardless of the requested precision.
func (m *Matrix[T]) Whole() bool {
	for _, v := range m.data {
		if !wholeScalar(v) {
			return false
		}
	}
	return true
}

// String renders the matrix in the Auto format with default options.
func (m *Matrix[T]) String() string {
	b, _ := Marshal(Auto, m)
	return string(b)
}

// Equal reports whether a and b have the same dimensions and exactly
// equal entries.
func Equal[T Scalar](a, b *Matrix[T]) bool {
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}

// Vector is a flat sequence of values, the 1D counterpart of Matrix.
type Vector[T Scalar] []T

// Matrix converts v into a single-row matrix.
func (v Vector[T]) Matrix() *Matrix[T] {
	data := make([]T, len(v))
	copy(data, v)
	return &Matrix[T]{rows: 1, cols: len(v), data: data}
}

// Vector flattens m into a row-major vector.
func (m *Matrix[T]) Vector() Vector[T] {
	return Vector[T](m.Data())
}
