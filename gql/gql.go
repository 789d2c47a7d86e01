// Package gql wires input-string scalars into the graphql-go host engine.
// ParseValue and ParseLiteral follow graphql-go's convention of signaling an
// invalid value by returning nil; hosts that need the structured Issue should
// call the core CoerceInput directly.
package gql

import (
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"

	inputstring "github.com/acarl005/graphql-input-string"
)

// NewScalar resolves opts and returns the graphql-go scalar type for it.
func NewScalar(opts inputstring.Options) (*graphql.Scalar, error) {
	s, err := inputstring.InputString(opts)
	if err != nil {
		return nil, err
	}
	return FromScalar(s), nil
}

// MustScalar is like NewScalar but panics on configuration errors.
func MustScalar(opts inputstring.Options) *graphql.Scalar {
	return FromScalar(inputstring.MustInputString(opts))
}

// FromScalar wraps an already-resolved Scalar. Value and literal arguments go
// through the same coercion pipeline; serialization passes values through
// unchanged.
func FromScalar(s *inputstring.Scalar) *graphql.Scalar {
	return graphql.NewScalar(graphql.ScalarConfig{
		Name:        s.Name(),
		Description: s.Description(),
		Serialize: func(value any) any {
			return s.CoerceOutput(value)
		},
		ParseValue: func(value any) any {
			v, err := s.CoerceInput(value)
			if err != nil {
				return nil
			}
			return v
		},
		ParseLiteral: func(valueAST ast.Value) any {
			lit, ok := valueAST.(*ast.StringValue)
			if !ok {
				return nil
			}
			v, err := s.CoerceInput(lit.Value)
			if err != nil {
				return nil
			}
			return v
		},
	})
}
