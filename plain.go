package matfmt

import (
	"fmt"
	"io"
	"strings"
)

// writePlain renders the flat file body read back by [Read] and [Load]:
// one space-joined row per line, no header. The column separator option
// does not apply here so saved files always stay loadable.
func writePlain[T Scalar](w io.Writer, m *Matrix[T], cfg config) error {
	for i := 0; i < m.rows; i++ {
		if _, err := fmt.Fprintln(w, strings.Join(dataRow(m, i, cfg.dataDecimals()), " ")); err != nil {
			return err
		}
	}
	return nil
}
