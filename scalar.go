package inputstring

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/acarl005/graphql-input-string/i18n"
	"github.com/acarl005/graphql-input-string/jsonschema"
)

// Scalar is a resolved input-string scalar type. It is immutable after
// construction and safe to share across unboundedly many concurrent
// coercions.
type Scalar struct {
	name        string
	description string

	sanitize func(string) string
	trim     trimMode
	truncate int // character count; -1 when unset
	caseFold func(string) string

	empty    bool
	min, max int // -1 when unset
	pattern  *regexp.Regexp
	test     func(string) bool

	parse   func(string) string
	onError func(Issue) error
}

// InputString resolves opts into an immutable Scalar. It fails before any
// type is produced when Name is missing, the pattern does not compile, or the
// capitalize mode is unknown.
func InputString(opts Options) (*Scalar, error) {
	if opts.Name == "" {
		return nil, ErrNameRequired
	}
	caseFold, err := resolveCase(opts)
	if err != nil {
		return nil, err
	}
	pattern := opts.Regex
	if pattern == nil && opts.Pattern != "" {
		pattern, err = regexp.Compile(opts.Pattern)
		if err != nil {
			return nil, fmt.Errorf("inputstring: invalid pattern for %s: %w", opts.Name, err)
		}
	}
	s := &Scalar{
		name:        opts.Name,
		description: opts.Description,
		sanitize:    opts.Sanitize,
		trim:        resolveTrim(opts),
		truncate:    intOr(opts.Truncate, -1),
		caseFold:    caseFold,
		empty:       opts.Empty,
		min:         intOr(opts.Min, -1),
		max:         intOr(opts.Max, -1),
		pattern:     pattern,
		test:        opts.Test,
		parse:       opts.Parse,
		onError:     opts.OnError,
	}
	if s.description == "" {
		s.description = autoDescription(s.min, s.max, s.trim != trimNone)
	}
	return s, nil
}

// MustInputString is like InputString but panics on configuration errors.
func MustInputString(opts Options) *Scalar {
	s, err := InputString(opts)
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Scalar) Name() string        { return s.name }
func (s *Scalar) Description() string { return s.description }

// CoerceInput runs raw through the transform and validation pipeline and
// returns the coerced string. The first violated rule short-circuits the
// rest; the returned error carries the original raw value.
func (s *Scalar) CoerceInput(raw any) (string, error) {
	v, ok := raw.(string)
	if !ok {
		return "", s.fail(raw, CodeType, map[string]any{"name": s.name}, nil)
	}
	if s.sanitize != nil {
		v = s.sanitize(v)
	}
	v = s.trim.apply(v)
	if s.truncate >= 0 {
		v = truncateRunes(v, s.truncate)
	}
	if s.caseFold != nil {
		v = s.caseFold(v)
	}
	if v == "" && !s.empty {
		return "", s.fail(raw, CodeEmpty, nil, nil)
	}
	n := utf8.RuneCountInString(v)
	if s.min >= 0 && n < s.min {
		return "", s.fail(raw, CodeMin, map[string]any{"min": s.min}, nil)
	}
	if s.max >= 0 && n > s.max {
		return "", s.fail(raw, CodeMax, map[string]any{"max": s.max}, nil)
	}
	if s.pattern != nil && !s.pattern.MatchString(v) {
		return "", s.fail(raw, CodePattern, map[string]any{"pattern": s.pattern.String()}, nil)
	}
	if s.test != nil && !s.test(v) {
		return "", s.fail(raw, CodeTest, nil, nil)
	}
	// The parse hook derives the final representation and is not re-subjected
	// to the validations above.
	if s.parse != nil {
		return s.parse(v), nil
	}
	return v, nil
}

// CoerceOutput is the identity. A server returning a stored value must not
// silently re-normalize it, so none of the input steps run here.
func (s *Scalar) CoerceOutput(v any) any { return v }

// JSONSchema projects the scalar's validation rules into a JSON Schema
// representation.
func (s *Scalar) JSONSchema() *jsonschema.Schema {
	js := &jsonschema.Schema{Type: "string", Description: s.description}
	if s.min >= 0 {
		min := s.min
		js.MinLength = &min
	}
	if s.max >= 0 {
		max := s.max
		js.MaxLength = &max
	}
	if s.pattern != nil {
		js.Pattern = s.pattern.String()
	}
	return js
}

func (s *Scalar) fail(raw any, code string, params map[string]any, cause error) error {
	data := make(map[string]string, len(params))
	for k, p := range params {
		data[k] = fmt.Sprint(p)
	}
	it := Issue{Value: raw, Code: code, Message: i18n.T(code, data), Cause: cause, Params: params}
	if s.onError != nil {
		return s.onError(it)
	}
	return it
}
