package matfmt

import "io"

type bracketChars struct {
	onlyLeft, onlyRight     string
	topLeft, topRight       string
	middleLeft, middleRight string
	bottomLeft, bottomRight string
}

var bracketSets = map[BracketStyle]bracketChars{
	BracketSquare: {
		onlyLeft: "[", onlyRight: "]",
		topLeft: "⎡", topRight: "⎤",
		middleLeft: "⎢", middleRight: "⎥",
		bottomLeft: "⎣", bottomRight: "⎦",
	},
	BracketParen: {
		onlyLeft: "(", onlyRight: ")",
		topLeft: "⎛", topRight: "⎞",
		middleLeft: "⎜", middleRight: "⎟",
		bottomLeft: "⎝", bottomRight: "⎠",
	},
	BracketASCII: {
		onlyLeft: "[", onlyRight: "]",
		topLeft: "[", topRight: "]",
		middleLeft: "|", middleRight: "|",
		bottomLeft: "[", bottomRight: "]",
	},
}

func writePretty[T Scalar](w io.Writer, m *Matrix[T], cfg config) error {
	chars, ok := bracketSets[cfg.brackets]
	if !ok {
		chars = bracketSets[BracketSquare]
	}
	if m.rows == 0 || m.cols == 0 {
		_, err := io.WriteString(w, chars.onlyLeft+chars.onlyRight+"\n")
		return err
	}
	cells := fixedCells(m, cfg.displayDecimals())
	lines := alignRows(cells, cfg.separator)
	for i, line := range lines {
		var left, right string
		switch {
		case len(lines) == 1:
			left, right = chars.onlyLeft, chars.onlyRight
		case i == 0:
			left, right = chars.topLeft, chars.topRight
		case i == len(lines)-1:
			left, right = chars.bottomLeft, chars.bottomRight
		default:
			left, right = chars.middleLeft, chars.middleRight
		}
		if _, err := io.WriteString(w, left+" "+line+" "+right+"\n"); err != nil {
			return err
		}
	}
	return nil
}
