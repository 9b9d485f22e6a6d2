package matfmt

import "io"

// DefaultEnvironment is the matrix environment [LaTeX] renders when no
// [LaTeXEnv] override is given.
const DefaultEnvironment = "pmatrix"

func writeLaTeX[T Scalar](w io.Writer, m *Matrix[T], env string, cfg config) error {
	if _, err := io.WriteString(w, "\\begin{"+env+"}\n"); err != nil {
		return err
	}
	cells := fixedCells(m, cfg.displayDecimals())
	lines := alignRows(cells, " & ")
	for i, line := range lines {
		if i < len(lines)-1 {
			line += " \\\\"
		}
		if _, err := io.WriteString(w, line+"\n"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "\\end{"+env+"}\n")
	return err
}
