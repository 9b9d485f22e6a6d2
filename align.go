package matfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Align pads every cell of the grid to its column's width and joins the
// cells of each row with sep, one row per line with a trailing newline.
// Cells are right-aligned, the convention for numeric tables. Widths are
// display cells rather than byte or rune counts so wide glyphs line up.
// An empty grid yields the empty string.
func Align(cells [][]string, sep string) string {
	lines := alignRows(cells, sep)
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func alignRows(cells [][]string, sep string) []string {
	widths := columnWidths(cells)
	if len(widths) == 0 {
		return nil
	}
	lines := make([]string, len(cells))
	for i, row := range cells {
		padded := make([]string, len(row))
		for j, cell := range row {
			padded[j] = padCell(cell, widths[j])
		}
		lines[i] = strings.Join(padded, sep)
	}
	return lines
}

func columnWidths(cells [][]string) []int {
	var widths []int
	for _, row := range cells {
		for j, cell := range row {
			w := runewidth.StringWidth(cell)
			if j >= len(widths) {
				widths = append(widths, w)
			} else if w > widths[j] {
				widths[j] = w
			}
		}
	}
	return widths
}

func padCell(cell string, width int) string {
	if pad := width - runewidth.StringWidth(cell); pad > 0 {
		return strings.Repeat(" ", pad) + cell
	}
	return cell
}
