package matfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"strings"

	"gopkg.in/yaml.v3"
)

// WriteSeq renders matrices from an iterator to w as they arrive. The row
// formats (Plain, CSV, TSV, JSONL) concatenate, so a stream of matrices
// with matching widths reads back with [Read] as one tall matrix. JSON
// streams matrices as array elements and YAML as separate documents. The
// block formats (Auto, Fixed, Scaled, Pretty, LaTeX, Markdown, HTML)
// write the matrices separated by blank lines.
func WriteSeq[T Scalar](w io.Writer, f Format, seq iter.Seq[*Matrix[T]], opts ...Option) error {
	if env, ok := strings.CutPrefix(string(f), latexPrefix); ok && env != "" {
		return streamBlocks(w, f, seq, opts)
	}
	switch f {
	case JSON:
		return streamJSON(w, seq)
	case YAML:
		return streamYAML(w, seq)
	case Plain, CSV, TSV, JSONL:
		return streamRows(w, f, seq, opts)
	case Auto, Fixed, Scaled, Pretty, LaTeX, Markdown, HTML:
		return streamBlocks(w, f, seq, opts)
	}
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
}

// WriteChan renders matrices from a channel to w.
// It is a thin wrapper around [WriteSeq].
func WriteChan[T Scalar](w io.Writer, f Format, ch <-chan *Matrix[T], opts ...Option) error {
	return WriteSeq(w, f, chanToSeq(ch), opts...)
}

func chanToSeq[T Scalar](ch <-chan *Matrix[T]) iter.Seq[*Matrix[T]] {
	return func(yield func(*Matrix[T]) bool) {
		for m := range ch {
			if !yield(m) {
				return
			}
		}
	}
}

func streamJSON[T Scalar](w io.Writer, seq iter.Seq[*Matrix[T]]) error {
	if _, err := io.WriteString(w, "["); err != nil {
		return err
	}
	first := true
	var encErr error
	seq(func(m *Matrix[T]) bool {
		if m == nil {
			m = &Matrix[T]{}
		}
		if !first {
			if _, err := io.WriteString(w, ","); err != nil {
				encErr = err
				return false
			}
		}
		first = false
		p, err := newPayload(m, JSON)
		if err != nil {
			encErr = err
			return false
		}
		if err := json.NewEncoder(w).Encode(p); err != nil {
			encErr = err
			return false
		}
		return true
	})
	if encErr != nil {
		return encErr
	}
	_, err := io.WriteString(w, "]\n")
	return err
}

func streamYAML[T Scalar](w io.Writer, seq iter.Seq[*Matrix[T]]) error {
	var enc *yaml.Encoder
	var encErr error
	seq(func(m *Matrix[T]) bool {
		if m == nil {
			m = &Matrix[T]{}
		}
		p, err := newPayload(m, YAML)
		if err != nil {
			encErr = err
			return false
		}
		if enc == nil {
			enc = yaml.NewEncoder(w)
		}
		if err := enc.Encode(p); err != nil {
			encErr = err
			return false
		}
		return true
	})
	if encErr != nil {
		return encErr
	}
	if enc == nil {
		return nil
	}
	return enc.Close()
}

func streamRows[T Scalar](w io.Writer, f Format, seq iter.Seq[*Matrix[T]], opts []Option) error {
	var streamErr error
	seq(func(m *Matrix[T]) bool {
		if err := Write(w, f, m, opts...); err != nil {
			streamErr = err
			return false
		}
		return true
	})
	return streamErr
}

func streamBlocks[T Scalar](w io.Writer, f Format, seq iter.Seq[*Matrix[T]], opts []Option) error {
	first := true
	var streamErr error
	seq(func(m *Matrix[T]) bool {
		if !first {
			if _, err := io.WriteString(w, "\n"); err != nil {
				streamErr = err
				return false
			}
		}
		first = false
		if err := Write(w, f, m, opts...); err != nil {
			streamErr = err
			return false
		}
		return true
	})
	return streamErr
}
