package matfmt

import (
	"io"

	"gopkg.in/yaml.v3"
)

func writeYAML[T Scalar](w io.Writer, m *Matrix[T]) error {
	p, err := newPayload(m, YAML)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(p); err != nil {
		return err
	}
	return enc.Close()
}
