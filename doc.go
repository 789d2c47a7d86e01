package inputstring

// Package inputstring builds GraphQL string scalar types from a declarative
// rule set:
//
// - Input coercion runs a fixed pipeline of transforms (sanitize, trim,
//   truncate, case folding) and validations (emptiness, length bounds,
//   pattern, custom predicate) with a final validation-bypassing parse hook.
// - Output coercion is the identity; stored values are never re-normalized.
// - Failures are reported as a stable Issue value (kind, original raw input,
//   default message, kind-specific params), optionally replaced by a custom
//   error hook.
//
// Design policy:
// - Keep the pure coercion core in the root package with no I/O of its own.
// - Place the chained builder under dsl/, YAML definition loading under
//   yamldef/, and the graphql-go host adapter under gql/.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	s, err := inputstring.InputString(inputstring.Options{
//	    Name: "NonEmptyTrimmed",
//	    Trim: true,
//	    Min:  inputstring.Int(1),
//	})
//	v, err := s.CoerceInput("  hello  ") // "hello"
//	out := s.CoerceOutput(" raw ")       // " raw ", unchanged
