// Package matfmt renders numeric matrices in multiple output formats and
// reads and writes them as flat text files.
//
// The central types are [Matrix], an immutable row-major dense matrix of
// float64 or complex128 entries, and [Format], which selects an output
// encoding for [Write] and [Marshal]:
//
//	m, err := matfmt.FromRows([][]float64{{1.5, 2}, {3.25, 4}})
//	matfmt.Write(os.Stdout, matfmt.Auto, m)
//
// # Display Formats
//
// [Auto], [Fixed], and [Scaled] render a "<rows>x<cols>" dimension header
// followed by a right-aligned table. Fixed keeps a fixed number of
// fraction digits, except that a matrix whose entries are all whole drops
// them entirely. Scaled factors the magnitude of the largest entry out of
// the table and prints it once as an E<exp> line:
//
//	2x2
//	E2
//	 1.200   2.400
//	 3.600   4.800
//
// Auto picks Fixed for whole matrices and Scaled for everything else,
// which is also what [Matrix.String] prints.
//
// [Pretty] draws the matrix between bracket rails, selectable with
// [WithBrackets]. [LaTeX] renders a matrix environment; use [LaTeXEnv]
// for an environment other than pmatrix:
//
//	matfmt.Write(w, matfmt.LaTeXEnv("bmatrix"), m)
//
// # Data Formats
//
// [Plain], [CSV], and [TSV] render one row per line with no header.
// Unless [WithDecimals] overrides it, entries use the shortest rendering
// that parses back to the same value, so these formats are lossless.
// [JSON], [JSONL], and [YAML] encode a {rows, cols, data} object; they
// reject complex matrices, which neither encoding can carry. Use
// [IsSupported] to check a scalar type against a format:
//
//	if matfmt.IsSupported[complex128](matfmt.JSON) { ... }
//
// # Files
//
// [Save] writes the Plain rendering of a matrix to a file, and [Load]
// reads it back. The file format is bare ASCII numbers separated by
// whitespace, one matrix row per line; the column count is taken from the
// first non-blank line. [LoadOptional] treats any failure as an absent
// file, for callers that seed state from files that may not exist yet.
// [Read] parses the same format from any reader.
//
// # Streams
//
// [WriteSeq] and [WriteChan] render a sequence of matrices as they
// arrive. Row formats concatenate, JSON emits an array, YAML emits one
// document per matrix, and display formats separate matrices with blank
// lines.
//
// # Complex Entries
//
// Complex matrices render in compact a+bi notation via [FormatComplex]:
// pure reals drop the imaginary term, "1i" renders as "i", and whole
// components drop their fraction digits.
//
// # Format Selection
//
// Use [ParseFormat] to convert a CLI flag string into a [Format]. It
// recognizes all static formats and "latex=<env>" strings:
//
//	f, err := matfmt.ParseFormat(flagValue)
//	matfmt.Write(os.Stdout, f, m)
//
// # Interop
//
// [FromGonum], [ToGonum], and their complex counterparts convert to and
// from gonum dense matrices, so anything that produces a gonum matrix can
// be rendered directly.
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedFormat] — unknown format string
//   - [ErrUnsupportedScalar] — complex matrix given to a real-only format
//   - [ErrBadShape] — dimensions that do not match the data
//
// File reading reports structured errors: [*ShapeError] when the token
// count does not divide into whole rows, and [*ParseError] when a token
// is not a number.
package matfmt
