package matfmt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ShapeError reports a token count that does not divide into whole rows
// of the column count inferred from the first non-blank line.
type ShapeError struct {
	Path   string
	Values int
	Cols   int
}

func (e *ShapeError) Error() string {
	s := fmt.Sprintf("%d values do not divide into rows of %d", e.Values, e.Cols)
	if e.Path != "" {
		s = e.Path + ": " + s
	}
	return s
}

// ParseError reports a token that did not parse as a float64.
type ParseError struct {
	Path  string
	Line  int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	s := fmt.Sprintf("line %d: %q: %v", e.Line, e.Token, e.Err)
	if e.Path != "" {
		s = e.Path + ": " + s
	}
	return s
}

func (e *ParseError) Unwrap() error { return e.Err }

// Read parses a whitespace-separated matrix from r. The column count
// comes from the first non-blank line; later lines may wrap or split
// rows as long as the token count divides into whole rows, otherwise a
// *ShapeError is returned. Tokens that do not parse as float64 return a
// *ParseError. A stream with no tokens yields the empty matrix.
func Read(r io.Reader) (*Matrix[float64], error) {
	return read(r, "")
}

func read(r io.Reader, path string) (*Matrix[float64], error) {
	br := bufio.NewReader(r)
	var (
		values []float64
		cols   int
		line   int
	)
	for {
		// ReadString grows with the line, so row width is unbounded.
		text, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			if path != "" {
				return nil, fmt.Errorf("%s: %w", path, err)
			}
			return nil, err
		}
		if text != "" {
			line++
			fields := strings.Fields(text)
			if cols == 0 && len(fields) > 0 {
				cols = len(fields)
			}
			for _, tok := range fields {
				v, perr := strconv.ParseFloat(tok, 64)
				if perr != nil {
					return nil, &ParseError{Path: path, Line: line, Token: tok, Err: perr}
				}
				values = append(values, v)
			}
		}
		if err == io.EOF {
			break
		}
	}
	if cols == 0 {
		return &Matrix[float64]{}, nil
	}
	if len(values)%cols != 0 {
		return nil, &ShapeError{Path: path, Values: len(values), Cols: cols}
	}
	return &Matrix[float64]{rows: len(values) / cols, cols: cols, data: values}, nil
}

// Load reads the matrix stored at path. Errors carry the path.
func Load(path string) (*Matrix[float64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return read(f, path)
}

// LoadOptional reads the matrix stored at path, reporting absence
// instead of an error. A missing, unreadable, or malformed file is
// simply not there. Use [Load] when the failure itself matters.
func LoadOptional(path string) (*Matrix[float64], bool) {
	m, err := Load(path)
	if err != nil {
		return nil, false
	}
	return m, true
}

// Save writes m to path in the [Plain] format. The whole rendering is
// built in memory first, so a failed render leaves the file untouched.
// Real matrices saved with default options round-trip exactly through
// [Load].
func Save[T Scalar](path string, m *Matrix[T], opts ...Option) error {
	b, err := Marshal(Plain, m, opts...)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}
