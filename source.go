package inputstring

import (
	gojson "github.com/goccy/go-json"
)

// CoerceJSON decodes a single JSON value and runs it through the input
// pipeline. A JSON value that is not syntactically a string fails with kind
// "type", the same as a non-string literal; so does malformed JSON, with the
// decode error attached as Cause.
func (s *Scalar) CoerceJSON(data []byte) (string, error) {
	var v any
	if err := gojson.Unmarshal(data, &v); err != nil {
		return "", s.fail(string(data), CodeType, map[string]any{"name": s.name}, err)
	}
	return s.CoerceInput(v)
}
