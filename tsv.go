package matfmt

import (
	"fmt"
	"io"
	"strings"
)

func writeTSV[T Scalar](w io.Writer, m *Matrix[T], cfg config) error {
	for i := 0; i < m.rows; i++ {
		if _, err := fmt.Fprintln(w, strings.Join(dataRow(m, i, cfg.dataDecimals()), "\t")); err != nil {
			return err
		}
	}
	return nil
}
