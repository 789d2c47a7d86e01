package inputstring

import (
	"errors"
	"fmt"
)

// Coercion kinds (exported consts for IDE completion and type safety by convention)
const (
	CodeType    = "type"
	CodeEmpty   = "empty"
	CodeMin     = "min"
	CodeMax     = "max"
	CodePattern = "pattern"
	CodeTest    = "test"
)

// Issue describes a single failed input coercion. It is created fresh per
// failure and never mutated afterwards.
type Issue struct {
	Value   any    // Original raw input, before any transform ran.
	Code    string // One of the codes listed above.
	Message string
	Cause   error // Optional: underlying error.
	// Params carries kind-specific parameters (e.g., {"min":2}) for i18n and
	// observability.
	Params map[string]any
}

func (it Issue) Error() string {
	return fmt.Sprintf("%s: %s", it.Code, it.Message)
}

// AsIssue extracts an Issue from an error using errors.As internally. It
// reports false when a custom error hook replaced the default Issue with an
// unrelated error type.
func AsIssue(err error) (Issue, bool) {
	if err == nil {
		return Issue{}, false
	}
	var it Issue
	if errors.As(err, &it) {
		return it, true
	}
	return Issue{}, false
}

// ErrNameRequired indicates InputString was called without a Name. This is a
// construction-time failure and signals a programming error in the caller,
// not a data-validation failure.
var ErrNameRequired = errors.New("inputstring: name is required")
