package matfmt

import (
	"math"
	"math/cmplx"
)

// ScaleExponent returns the decimal exponent of the entry with the largest
// magnitude, i.e. floor(log10(max |entry|)). Complex entries contribute
// their modulus. Empty, all-zero, and non-finite matrices report 0.
func (m *Matrix[T]) ScaleExponent() int {
	var largest float64
	for _, v := range m.data {
		if mag := magnitude(v); mag > largest {
			largest = mag
		}
	}
	if largest == 0 || math.IsInf(largest, 0) || math.IsNaN(largest) {
		return 0
	}
	exp := int(math.Floor(math.Log10(largest)))
	// Log10 lands a hair under some exact powers of ten, which would
	// put the mantissa at 10 instead of 1.
	if largest >= math.Pow(10, float64(exp+1)) {
		exp++
	}
	return exp
}

func magnitude[T Scalar](v T) float64 {
	switch v := any(v).(type) {
	case float64:
		return math.Abs(v)
	case complex128:
		return cmplx.Abs(v)
	}
	return 0
}
