package gql_test

import (
	"testing"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	inputstring "github.com/acarl005/graphql-input-string"
	"github.com/acarl005/graphql-input-string/gql"
)

func testSchema(t *testing.T, scalar *graphql.Scalar) graphql.Schema {
	t.Helper()
	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query: graphql.NewObject(graphql.ObjectConfig{
			Name: "Query",
			Fields: graphql.Fields{
				"echo": &graphql.Field{
					Type: graphql.String,
					Args: graphql.FieldConfigArgument{
						"value": &graphql.ArgumentConfig{Type: scalar},
					},
					Resolve: func(p graphql.ResolveParams) (any, error) {
						return p.Args["value"], nil
					},
				},
				"stored": &graphql.Field{
					Type: scalar,
					Resolve: func(p graphql.ResolveParams) (any, error) {
						return "  stored  ", nil
					},
				},
			},
		}),
	})
	require.NoError(t, err)
	return schema
}

func TestScalar_CoercesLiteralArgument(t *testing.T) {
	schema := testSchema(t, gql.MustScalar(inputstring.Options{Name: "Trimmed", Trim: true}))

	r := graphql.Do(graphql.Params{Schema: schema, RequestString: `{ echo(value: "  hi  ") }`})
	require.Empty(t, r.Errors)
	assert.Equal(t, map[string]any{"echo": "hi"}, r.Data)
}

func TestScalar_CoercesVariableValue(t *testing.T) {
	schema := testSchema(t, gql.MustScalar(inputstring.Options{Name: "Trimmed", Trim: true}))

	r := graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  `query ($v: Trimmed) { echo(value: $v) }`,
		VariableValues: map[string]any{"v": "  hi  "},
	})
	require.Empty(t, r.Errors)
	assert.Equal(t, map[string]any{"echo": "hi"}, r.Data)
}

func TestScalar_RejectsNonStringLiteral(t *testing.T) {
	schema := testSchema(t, gql.MustScalar(inputstring.Options{Name: "Trimmed", Trim: true}))

	r := graphql.Do(graphql.Params{Schema: schema, RequestString: `{ echo(value: 42) }`})
	assert.NotEmpty(t, r.Errors)
}

func TestScalar_RejectsInvalidValue(t *testing.T) {
	schema := testSchema(t, gql.MustScalar(inputstring.Options{Name: "Short", Max: inputstring.Int(2)}))

	r := graphql.Do(graphql.Params{
		Schema:         schema,
		RequestString:  `query ($v: Short) { echo(value: $v) }`,
		VariableValues: map[string]any{"v": "toolong"},
	})
	assert.NotEmpty(t, r.Errors)
}

func TestScalar_SerializeIsIdentity(t *testing.T) {
	schema := testSchema(t, gql.MustScalar(inputstring.Options{Name: "Trimmed", Trim: true}))

	r := graphql.Do(graphql.Params{Schema: schema, RequestString: `{ stored }`})
	require.Empty(t, r.Errors)
	// output coercion never trims
	assert.Equal(t, map[string]any{"stored": "  stored  "}, r.Data)
}

func TestNewScalar_PropagatesConfigErrors(t *testing.T) {
	_, err := gql.NewScalar(inputstring.Options{})
	assert.ErrorIs(t, err, inputstring.ErrNameRequired)

	s, err := gql.NewScalar(inputstring.Options{Name: "Caps", UpperCase: true})
	require.NoError(t, err)
	assert.Equal(t, "Caps", s.Name())
	assert.Equal(t, "A string.", s.Description())
}
