package matfmt

import (
	"encoding/json"
	"fmt"
	"io"
)

// payload is the shape-tagged object shared by the JSON, JSONL, and YAML
// encoders. Entries are row-major.
type payload struct {
	Rows int       `json:"rows" yaml:"rows"`
	Cols int       `json:"cols" yaml:"cols"`
	Data []float64 `json:"data" yaml:"data"`
}

// newPayload converts m for encoding. Complex matrices are rejected up
// front: neither encoding/json nor yaml.v3 can marshal complex128.
func newPayload[T Scalar](m *Matrix[T], f Format) (payload, error) {
	var zero T
	if _, ok := any(zero).(complex128); ok {
		return payload{}, fmt.Errorf("%w: format %q cannot encode complex128", ErrUnsupportedScalar, f)
	}
	data := make([]float64, len(m.data))
	for i, v := range m.data {
		data[i] = any(v).(float64)
	}
	return payload{Rows: m.rows, Cols: m.cols, Data: data}, nil
}

func writeJSON[T Scalar](w io.Writer, m *Matrix[T]) error {
	p, err := newPayload(m, JSON)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}
