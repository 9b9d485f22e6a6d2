package matfmt

import (
	"encoding/json"
	"io"
)

func writeJSONL[T Scalar](w io.Writer, m *Matrix[T]) error {
	p, err := newPayload(m, JSONL)
	if err != nil {
		return err
	}
	return json.NewEncoder(w).Encode(p)
}
