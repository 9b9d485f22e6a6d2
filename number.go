package matfmt

import (
	"math"
	"strconv"
)

// IsWhole reports whether v is a finite value with no fractional part.
// Signed zero counts as whole.
func IsWhole(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v == math.Round(v)
}

func wholeScalar[T Scalar](v T) bool {
	switch v := any(v).(type) {
	case float64:
		return IsWhole(v)
	case complex128:
		return IsWhole(real(v)) && IsWhole(imag(v))
	}
	return false
}

// formatFixed renders v with exactly decimals fraction digits. Negative
// decimals select the shortest representation that parses back exactly.
func formatFixed(v float64, decimals int) string {
	if decimals < 0 {
		decimals = -1
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

// fixedCells renders every entry for table-style display. A whole matrix
// drops its fraction digits no matter the requested precision.
func fixedCells[T Scalar](m *Matrix[T], decimals int) [][]string {
	if m.Whole() {
		decimals = 0
	}
	return cellGrid(m, func(v T) string {
		switch v := any(v).(type) {
		case float64:
			return formatFixed(v, decimals)
		case complex128:
			return FormatComplex(v, decimals)
		}
		return ""
	})
}

// dataRow renders row i for the data formats (Plain, CSV, TSV), which
// never collapse precision matrix-wide.
func dataRow[T Scalar](m *Matrix[T], i, decimals int) []string {
	row := make([]string, m.cols)
	for j := 0; j < m.cols; j++ {
		switch v := any(m.data[i*m.cols+j]).(type) {
		case float64:
			row[j] = formatFixed(v, decimals)
		case complex128:
			row[j] = FormatComplex(v, decimals)
		}
	}
	return row
}

func cellGrid[T Scalar](m *Matrix[T], render func(T) string) [][]string {
	cells := make([][]string, m.rows)
	for i := 0; i < m.rows; i++ {
		row := make([]string, m.cols)
		for j := 0; j < m.cols; j++ {
			row[j] = render(m.data[i*m.cols+j])
		}
		cells[i] = row
	}
	return cells
}
