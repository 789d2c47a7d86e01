// Package yamldef loads input-string scalar definitions from YAML documents,
// for schema servers that configure their scalar types declaratively. Custom
// hooks (sanitize, parse, test, error) cannot be expressed in YAML; attach
// them in code via the Definition's Options.
package yamldef

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	inputstring "github.com/acarl005/graphql-input-string"
	"gopkg.in/yaml.v3"
)

// Capitalize accepts either the boolean form (true meaning the first letter
// only) or one of the textual modes "characters", "words", "sentences".
type Capitalize struct {
	Mode inputstring.Capitalize
}

func (c *Capitalize) UnmarshalYAML(node *yaml.Node) error {
	var b bool
	if err := node.Decode(&b); err == nil {
		if b {
			c.Mode = inputstring.CapitalizeFirst
		} else {
			c.Mode = inputstring.CapitalizeNone
		}
		return nil
	}
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	switch m := inputstring.Capitalize(s); m {
	case inputstring.CapitalizeNone, inputstring.CapitalizeFirst,
		inputstring.CapitalizeCharacters, inputstring.CapitalizeWords,
		inputstring.CapitalizeSentences:
		c.Mode = m
		return nil
	default:
		return fmt.Errorf("yamldef: unknown capitalize mode %q", s)
	}
}

// Definition is the YAML shape of one scalar type.
type Definition struct {
	Name        string     `yaml:"name"`
	Description string     `yaml:"description"`
	Trim        bool       `yaml:"trim"`
	TrimLeft    bool       `yaml:"trimLeft"`
	TrimRight   bool       `yaml:"trimRight"`
	Truncate    *int       `yaml:"truncate"`
	UpperCase   bool       `yaml:"upperCase"`
	LowerCase   bool       `yaml:"lowerCase"`
	Capitalize  Capitalize `yaml:"capitalize"`
	Empty       bool       `yaml:"empty"`
	Min         *int       `yaml:"min"`
	Max         *int       `yaml:"max"`
	Pattern     string     `yaml:"pattern"`
}

// Options converts the definition into the core option set.
func (d Definition) Options() inputstring.Options {
	return inputstring.Options{
		Name:        d.Name,
		Description: d.Description,
		Trim:        d.Trim,
		TrimLeft:    d.TrimLeft,
		TrimRight:   d.TrimRight,
		Truncate:    d.Truncate,
		UpperCase:   d.UpperCase,
		LowerCase:   d.LowerCase,
		Capitalize:  d.Capitalize.Mode,
		Empty:       d.Empty,
		Min:         d.Min,
		Max:         d.Max,
		Pattern:     d.Pattern,
	}
}

// Decode reads every document in a (possibly multi-document) YAML stream as
// one Definition each.
func Decode(data []byte) ([]Definition, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	var defs []Definition
	for {
		var d Definition
		if err := dec.Decode(&d); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}
		defs = append(defs, d)
	}
	return defs, nil
}

// Load decodes the YAML stream and resolves each definition into a Scalar.
func Load(data []byte) ([]*inputstring.Scalar, error) {
	defs, err := Decode(data)
	if err != nil {
		return nil, err
	}
	scalars := make([]*inputstring.Scalar, 0, len(defs))
	for _, d := range defs {
		s, err := inputstring.InputString(d.Options())
		if err != nil {
			return nil, err
		}
		scalars = append(scalars, s)
	}
	return scalars, nil
}

// LoadMap is like Load but keys the result by scalar name. Duplicate names
// are an error.
func LoadMap(data []byte) (map[string]*inputstring.Scalar, error) {
	scalars, err := Load(data)
	if err != nil {
		return nil, err
	}
	m := make(map[string]*inputstring.Scalar, len(scalars))
	for _, s := range scalars {
		if _, ok := m[s.Name()]; ok {
			return nil, fmt.Errorf("yamldef: duplicate scalar name %q", s.Name())
		}
		m[s.Name()] = s
	}
	return m, nil
}
