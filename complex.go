package matfmt

import "math"

// FormatComplex renders v in compact a+bi notation. Pure reals drop the
// imaginary term, pure imaginaries drop the real term, and unit imaginary
// parts render as a bare "i" with only the sign kept. Each component keeps
// decimals fraction digits unless it is whole, in which case the fraction
// digits are dropped for that component alone.
func FormatComplex(v complex128, decimals int) string {
	a, b := real(v), imag(v)
	switch {
	case isZero(a) && isZero(b):
		return "0"
	case isZero(b):
		return componentString(a, decimals)
	case isZero(a) && isOne(b):
		if math.Signbit(b) {
			return "-i"
		}
		return "i"
	case isZero(a):
		return componentString(b, decimals) + "i"
	case isOne(b):
		if math.Signbit(b) {
			return componentString(a, decimals) + "-i"
		}
		return componentString(a, decimals) + "+i"
	}
	s := componentString(a, decimals)
	if b >= 0 {
		s += "+"
	}
	return s + componentString(b, decimals) + "i"
}

func isZero(v float64) bool { return v == 0 }

func isOne(v float64) bool { return math.Abs(v) == 1 }

func componentString(v float64, decimals int) string {
	if IsWhole(v) {
		return formatFixed(v, 0)
	}
	return formatFixed(v, decimals)
}
