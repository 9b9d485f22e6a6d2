package matfmt

import (
	"fmt"
	"html"
	"io"
	"strconv"
)

const htmlCellStyle = ` style="text-align: right"`

func writeHTML[T Scalar](w io.Writer, m *Matrix[T], cfg config) error {
	if _, err := fmt.Fprintln(w, "<table>"); err != nil {
		return err
	}

	if m.cols > 0 {
		if _, err := fmt.Fprintln(w, "  <thead>"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for j := 0; j < m.cols; j++ {
			if _, err := fmt.Fprintf(w, "      <th%s>%s</th>\n", htmlCellStyle, strconv.Itoa(j+1)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, "  </thead>"); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "  <tbody>"); err != nil {
		return err
	}
	for _, row := range fixedCells(m, cfg.displayDecimals()) {
		if _, err := fmt.Fprintln(w, "    <tr>"); err != nil {
			return err
		}
		for _, cell := range row {
			if _, err := fmt.Fprintf(w, "      <td%s>%s</td>\n", htmlCellStyle, html.EscapeString(cell)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w, "    </tr>"); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, "  </tbody>"); err != nil {
		return err
	}

	_, err := fmt.Fprintln(w, "</table>")
	return err
}
