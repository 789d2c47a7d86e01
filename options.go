package inputstring

import (
	"fmt"
	"regexp"
	"strings"
)

// Capitalize selects which letters of the value are uppercased during input
// coercion. The zero value applies no capitalization.
type Capitalize string

const (
	CapitalizeNone Capitalize = ""
	// CapitalizeFirst uppercases the first letter of the whole string only.
	CapitalizeFirst Capitalize = "first"
	// CapitalizeCharacters uppercases every letter in the string.
	CapitalizeCharacters Capitalize = "characters"
	// CapitalizeWords uppercases the first letter of every
	// whitespace-delimited word.
	CapitalizeWords Capitalize = "words"
	// CapitalizeSentences uppercases the first letter following
	// start-of-string or a sentence terminator ('.', possibly followed by
	// whitespace).
	CapitalizeSentences Capitalize = "sentences"
)

// Options is the declarative rule set InputString resolves into a Scalar.
// Pointer fields distinguish "absent" from a configured zero.
type Options struct {
	// Name is required; construction fails without it.
	Name string
	// Description is passed through verbatim when set; otherwise a
	// description is derived from the resolved flags.
	Description string

	// Sanitize runs before the built-in transforms so a custom cleanup sees
	// the raw string.
	Sanitize func(string) string

	// Trim strips leading and trailing whitespace. It wins over the
	// one-sided flags when both are set.
	Trim      bool
	TrimLeft  bool
	TrimRight bool

	// Truncate cuts the already-trimmed value to its first N characters.
	Truncate *int

	// At most one case transform applies; when several are set, the last
	// applicable rule in pipeline order wins (Capitalize over LowerCase over
	// UpperCase).
	UpperCase  bool
	LowerCase  bool
	Capitalize Capitalize

	// Empty permits the empty string after transforms; by default it is
	// rejected with kind "empty".
	Empty bool
	Min   *int
	Max   *int

	// Pattern is compiled at construction time. Regex is used as-is and wins
	// over Pattern when both are set.
	Pattern string
	Regex   *regexp.Regexp

	// Test is a custom predicate; a false result fails with kind "test".
	Test func(string) bool

	// Parse derives the final representation and bypasses the remaining
	// validations; its result is returned immediately.
	Parse func(string) string

	// OnError replaces the default Issue with a custom error payload. It
	// always receives the original raw value and the determined kind.
	OnError func(Issue) error
}

// Int returns a pointer to n, for Options fields that distinguish zero from
// unset.
func Int(n int) *int { return &n }

// trimMode is the trim-family decision, resolved once at construction.
type trimMode int

const (
	trimNone trimMode = iota
	trimBoth
	trimLeading
	trimTrailing
)

func resolveTrim(o Options) trimMode {
	switch {
	case o.Trim, o.TrimLeft && o.TrimRight:
		return trimBoth
	case o.TrimLeft:
		return trimLeading
	case o.TrimRight:
		return trimTrailing
	}
	return trimNone
}

// resolveCase picks the single case transform for the configuration, or nil
// when none applies.
func resolveCase(o Options) (func(string) string, error) {
	switch {
	case o.Capitalize != CapitalizeNone:
		switch o.Capitalize {
		case CapitalizeFirst:
			return upperFirst, nil
		case CapitalizeCharacters:
			return strings.ToUpper, nil
		case CapitalizeWords:
			return upperWords, nil
		case CapitalizeSentences:
			return upperSentences, nil
		default:
			return nil, fmt.Errorf("inputstring: unknown capitalize mode %q", o.Capitalize)
		}
	case o.LowerCase:
		return strings.ToLower, nil
	case o.UpperCase:
		return strings.ToUpper, nil
	}
	return nil, nil
}

func intOr(p *int, def int) int {
	if p != nil {
		return *p
	}
	return def
}
