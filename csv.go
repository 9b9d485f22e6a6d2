package matfmt

import (
	"encoding/csv"
	"io"
)

func writeCSV[T Scalar](w io.Writer, m *Matrix[T], cfg config) error {
	cw := csv.NewWriter(w)
	for i := 0; i < m.rows; i++ {
		if err := cw.Write(dataRow(m, i, cfg.dataDecimals())); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
