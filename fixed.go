package matfmt

import (
	"fmt"
	"io"
)

func writeAuto[T Scalar](w io.Writer, m *Matrix[T], cfg config) error {
	if m.Whole() {
		return writeFixed(w, m, cfg)
	}
	return writeScaled(w, m, cfg)
}

func writeFixed[T Scalar](w io.Writer, m *Matrix[T], cfg config) error {
	if err := writeShape(w, m); err != nil {
		return err
	}
	cells := fixedCells(m, cfg.displayDecimals())
	for _, line := range alignRows(cells, cfg.separator) {
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

func writeShape[T Scalar](w io.Writer, m *Matrix[T]) error {
	_, err := fmt.Fprintf(w, "%dx%d\n", m.rows, m.cols)
	return err
}
