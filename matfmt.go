package matfmt

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnsupportedFormat = errors.New("unsupported format")
	ErrUnsupportedScalar = errors.New("unsupported scalar type")
	ErrBadShape          = errors.New("bad shape")
)

// Format represents an output format.
type Format string

const (
	// Auto picks [Fixed] when every entry is whole and [Scaled] otherwise.
	Auto Format = "auto"
	// Fixed renders a dimension header and a right-aligned entry table.
	Fixed Format = "fixed"
	// Scaled factors the magnitude of the largest entry out of the table
	// and renders mantissas under an E<exp> line.
	Scaled Format = "scaled"
	// Pretty draws the matrix between bracket rails.
	Pretty Format = "pretty"
	// LaTeX renders a matrix environment. Use [LaTeXEnv] for an
	// environment other than pmatrix.
	LaTeX Format = "latex"
	// Plain renders bare space-separated rows, the encoding [Load] reads.
	Plain Format = "plain"
	// CSV renders comma-separated rows.
	CSV Format = "csv"
	// TSV renders tab-separated rows.
	TSV Format = "tsv"
	// Markdown renders a pipe table with column-index headers.
	Markdown Format = "markdown"
	// HTML renders a table element.
	HTML Format = "html"
	// JSON renders an indented {rows, cols, data} object.
	JSON Format = "json"
	// JSONL renders the same object on a single line.
	JSONL Format = "jsonl"
	// YAML renders rows, cols, and data as a mapping.
	YAML Format = "yaml"
)

const latexPrefix = "latex="

var formats = []Format{Auto, Fixed, Scaled, Pretty, LaTeX, Plain, CSV, TSV, Markdown, HTML, JSON, JSONL, YAML}

// String returns the format name.
func (f Format) String() string { return string(f) }

// Formats returns all supported static format names.
// Parameterized LaTeX environments are not included.
func Formats() []Format {
	out := make([]Format, len(formats))
	copy(out, formats)
	return out
}

// LaTeXEnv returns a Format that renders inside the named LaTeX matrix
// environment, e.g. LaTeXEnv("bmatrix").
func LaTeXEnv(env string) Format {
	return Format(latexPrefix + env)
}

// ParseFormat parses a format string. Recognizes all static formats and
// latex=<env> strings.
func ParseFormat(s string) (Format, error) {
	if env, ok := strings.CutPrefix(s, latexPrefix); ok && env != "" {
		return Format(s), nil
	}
	for _, f := range formats {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
}

// IsSupported reports whether matrices with scalar type T can be rendered
// in format f. JSON, JSONL, and YAML reject complex matrices; every other
// format accepts both scalar types.
func IsSupported[T Scalar](f Format) bool {
	if env, ok := strings.CutPrefix(string(f), latexPrefix); ok && env != "" {
		return true
	}
	var zero T
	_, isComplex := any(zero).(complex128)
	switch f {
	case Auto, Fixed, Scaled, Pretty, LaTeX, Plain, CSV, TSV, Markdown, HTML:
		return true
	case JSON, JSONL, YAML:
		return !isComplex
	default:
		return false
	}
}

// BracketStyle controls the rail glyphs drawn by [Pretty].
type BracketStyle int

const (
	BracketSquare BracketStyle = iota // ⎡⎢⎣ ⎤⎥⎦
	BracketParen                      // ⎛⎜⎝ ⎞⎟⎠
	BracketASCII                      // [|] for terminals without box glyphs
)

// Write renders m to w in the given format. A nil matrix writes as empty.
func Write[T Scalar](w io.Writer, f Format, m *Matrix[T], opts ...Option) error {
	if m == nil {
		m = &Matrix[T]{}
	}
	cfg := newConfig(opts...)
	switch f {
	case Auto:
		return writeAuto(w, m, cfg)
	case Fixed:
		return writeFixed(w, m, cfg)
	case Scaled:
		return writeScaled(w, m, cfg)
	case Pretty:
		return writePretty(w, m, cfg)
	case LaTeX:
		return writeLaTeX(w, m, DefaultEnvironment, cfg)
	case Plain:
		return writePlain(w, m, cfg)
	case CSV:
		return writeCSV(w, m, cfg)
	case TSV:
		return writeTSV(w, m, cfg)
	case Markdown:
		return writeMarkdown(w, m, cfg)
	case HTML:
		return writeHTML(w, m, cfg)
	case JSON:
		return writeJSON(w, m)
	case JSONL:
		return writeJSONL(w, m)
	case YAML:
		return writeYAML(w, m)
	default:
		if env, ok := strings.CutPrefix(string(f), latexPrefix); ok && env != "" {
			return writeLaTeX(w, m, env, cfg)
		}
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
}

// Marshal renders m in the given format and returns the bytes.
func Marshal[T Scalar](f Format, m *Matrix[T], opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, f, m, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
