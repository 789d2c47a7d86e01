// Package dsl provides a chained builder over the inputstring Options set.
package dsl

import (
	"regexp"

	inputstring "github.com/acarl005/graphql-input-string"
)

// Builder accumulates scalar options. The zero value is not usable; start
// with String.
type Builder struct {
	opts inputstring.Options
}

// String creates a builder for a scalar type with the given name.
func String(name string) *Builder {
	return &Builder{opts: inputstring.Options{Name: name}}
}

// Description sets an explicit description; it wins verbatim over the
// derived one.
func (b *Builder) Description(d string) *Builder {
	b.opts.Description = d
	return b
}

// Sanitize registers a custom transform that runs before the built-in ones.
func (b *Builder) Sanitize(fn func(string) string) *Builder {
	b.opts.Sanitize = fn
	return b
}

func (b *Builder) Trim() *Builder {
	b.opts.Trim = true
	return b
}

func (b *Builder) TrimLeft() *Builder {
	b.opts.TrimLeft = true
	return b
}

func (b *Builder) TrimRight() *Builder {
	b.opts.TrimRight = true
	return b
}

func (b *Builder) Truncate(n int) *Builder {
	b.opts.Truncate = inputstring.Int(n)
	return b
}

func (b *Builder) UpperCase() *Builder {
	b.opts.UpperCase = true
	return b
}

func (b *Builder) LowerCase() *Builder {
	b.opts.LowerCase = true
	return b
}

func (b *Builder) Capitalize(mode inputstring.Capitalize) *Builder {
	b.opts.Capitalize = mode
	return b
}

// AllowEmpty accepts the empty string after transforms instead of rejecting
// it.
func (b *Builder) AllowEmpty() *Builder {
	b.opts.Empty = true
	return b
}

func (b *Builder) Min(n int) *Builder {
	b.opts.Min = inputstring.Int(n)
	return b
}

func (b *Builder) Max(n int) *Builder {
	b.opts.Max = inputstring.Int(n)
	return b
}

// Pattern sets a textual pattern compiled at Build time.
func (b *Builder) Pattern(expr string) *Builder {
	b.opts.Pattern = expr
	return b
}

// Regex sets an already-compiled pattern, used as-is.
func (b *Builder) Regex(re *regexp.Regexp) *Builder {
	b.opts.Regex = re
	return b
}

// Test registers a custom predicate; a false result fails coercion.
func (b *Builder) Test(fn func(string) bool) *Builder {
	b.opts.Test = fn
	return b
}

// Parse registers the final, validation-bypassing transform.
func (b *Builder) Parse(fn func(string) string) *Builder {
	b.opts.Parse = fn
	return b
}

// OnError registers a custom error formatter.
func (b *Builder) OnError(fn func(inputstring.Issue) error) *Builder {
	b.opts.OnError = fn
	return b
}

// Options returns a copy of the accumulated option set.
func (b *Builder) Options() inputstring.Options { return b.opts }

// Build resolves the accumulated options into a Scalar.
func (b *Builder) Build() (*inputstring.Scalar, error) {
	return inputstring.InputString(b.opts)
}

// MustBuild is like Build but panics on configuration errors.
func (b *Builder) MustBuild() *inputstring.Scalar {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
