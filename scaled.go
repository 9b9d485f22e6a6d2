package matfmt

import (
	"fmt"
	"io"
	"math"
)

func writeScaled[T Scalar](w io.Writer, m *Matrix[T], cfg config) error {
	if err := writeShape(w, m); err != nil {
		return err
	}
	exp := m.ScaleExponent()
	if _, err := fmt.Fprintf(w, "E%d\n", exp); err != nil {
		return err
	}
	scale := math.Pow(10, math.Abs(float64(exp)))
	decimals := cfg.displayDecimals()
	cells := cellGrid(m, func(v T) string {
		return scaledCell(v, exp, scale, decimals)
	})
	for _, line := range alignRows(cells, cfg.separator) {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// scaledCell renders the mantissa of v after factoring out 10^exp, at
// least decimals+3 characters wide. Multiplying by the positive power
// for negative exponents keeps exact values exact, where dividing by
// 0.1 would not.
func scaledCell[T Scalar](v T, exp int, scale float64, decimals int) string {
	switch v := any(v).(type) {
	case float64:
		mantissa := v / scale
		if exp < 0 {
			mantissa = v * scale
		}
		if decimals < 0 {
			return formatFixed(mantissa, Shortest)
		}
		return fmt.Sprintf("%*.*f", decimals+3, decimals, mantissa)
	case complex128:
		mantissa := v / complex(scale, 0)
		if exp < 0 {
			mantissa = v * complex(scale, 0)
		}
		if decimals < 0 {
			return FormatComplex(mantissa, Shortest)
		}
		return padCell(FormatComplex(mantissa, decimals), decimals+3)
	}
	return ""
}
