package inputstring

import (
	"fmt"
	"strings"
)

// autoDescription derives the scalar description from the resolved flags.
// min and max are -1 when unset.
func autoDescription(min, max int, trimmed bool) string {
	var b strings.Builder
	b.WriteString("A string")
	switch {
	case min >= 0 && max >= 0:
		fmt.Fprintf(&b, " between %d and %d characters", min, max)
	case min >= 0:
		fmt.Fprintf(&b, " of at least %d characters", min)
	case max >= 0:
		fmt.Fprintf(&b, " of at most %d characters", max)
	}
	if trimmed {
		b.WriteString(" that is trimmed")
	}
	b.WriteString(".")
	return b.String()
}
