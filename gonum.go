package matfmt

import "gonum.org/v1/gonum/mat"

// FromGonum copies src into a [Matrix]. Any [mat.Matrix] implementation
// works; entries are read through At.
func FromGonum(src mat.Matrix) *Matrix[float64] {
	r, c := src.Dims()
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data = append(data, src.At(i, j))
		}
	}
	return &Matrix[float64]{rows: r, cols: c, data: data}
}

// ToGonum copies m into a dense gonum matrix. Empty matrices return nil
// since gonum does not represent zero-sized dimensions.
func ToGonum(m *Matrix[float64]) *mat.Dense {
	if m == nil || m.rows == 0 || m.cols == 0 {
		return nil
	}
	return mat.NewDense(m.rows, m.cols, m.Data())
}

// FromGonumComplex copies src into a [Matrix].
func FromGonumComplex(src mat.CMatrix) *Matrix[complex128] {
	r, c := src.Dims()
	data := make([]complex128, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data = append(data, src.At(i, j))
		}
	}
	return &Matrix[complex128]{rows: r, cols: c, data: data}
}

// ToGonumComplex copies m into a dense complex gonum matrix, nil when
// empty.
func ToGonumComplex(m *Matrix[complex128]) *mat.CDense {
	if m == nil || m.rows == 0 || m.cols == 0 {
		return nil
	}
	return mat.NewCDense(m.rows, m.cols, m.Data())
}
