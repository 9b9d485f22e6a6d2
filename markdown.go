package matfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

func writeMarkdown[T Scalar](w io.Writer, m *Matrix[T], cfg config) error {
	if m.cols == 0 {
		return nil
	}
	cells := fixedCells(m, cfg.displayDecimals())

	// Matrices carry no column names, so headers are 1-based indices.
	header := make([]string, m.cols)
	for j := range header {
		header[j] = strconv.Itoa(j + 1)
	}

	// Column widths, minimum 3 for the alignment markers.
	widths := columnWidths(append([][]string{header}, cells...))
	for j := range widths {
		if widths[j] < 3 {
			widths[j] = 3
		}
	}

	if err := writeMarkdownRow(w, header, widths); err != nil {
		return err
	}

	sep := make([]string, m.cols)
	for j, width := range widths {
		sep[j] = strings.Repeat("-", width-1) + ":"
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, row := range cells {
		if err := writeMarkdownRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int) error {
	padded := make([]string, len(widths))
	for j, width := range widths {
		padded[j] = padCell(cells[j], width)
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}
