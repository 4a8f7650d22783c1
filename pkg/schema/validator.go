package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/mchmarny/sitenav/pkg/nav"
)

// Validator validates navbar documents against the navbar schema.
type Validator struct {
	schema *jsonschema.Schema
}

// NewValidator compiles the navbar schema.
func NewValidator() (*Validator, error) {
	data, err := Marshal(Navbar())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal navbar schema: %w", err)
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(NavbarID, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to add navbar schema resource: %w", err)
	}

	s, err := compiler.Compile(NavbarID)
	if err != nil {
		return nil, fmt.Errorf("failed to compile navbar schema: %w", err)
	}

	return &Validator{schema: s}, nil
}

// ValidateDocument checks a raw yaml or json navbar document.
func (v *Validator) ValidateDocument(data []byte, format nav.Format) error {
	var doc interface{}

	switch format {
	case nav.FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse yaml: %w", err)
		}
	case nav.FormatJSON:
		if err := json.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("failed to parse json: %w", err)
		}
	default:
		return fmt.Errorf("%w: %q", nav.ErrUnknownFormat, format)
	}

	if doc == nil {
		doc = []interface{}{}
	}

	return v.Validate(doc)
}

// Validate checks any value that marshals to a navbar document, including *nav.Navbar.
func (v *Validator) Validate(doc interface{}) error {
	// Normalize to plain JSON values; yaml decoding yields Go ints and the
	// validator expects json.Number-compatible types.
	jsonData, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document for validation: %w", err)
	}

	var plain interface{}
	if err := json.Unmarshal(jsonData, &plain); err != nil {
		return fmt.Errorf("failed to unmarshal document for validation: %w", err)
	}

	if err := v.schema.Validate(plain); err != nil {
		if ve, ok := err.(*jsonschema.ValidationError); ok {
			var msgs []string
			collectErrors(ve, &msgs)
			return fmt.Errorf("schema validation failed:\n%s", strings.Join(msgs, "\n"))
		}
		return fmt.Errorf("schema validation failed: %w", err)
	}

	return nil
}

func collectErrors(err *jsonschema.ValidationError, messages *[]string) {
	if len(err.Causes) == 0 {
		loc := err.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		*messages = append(*messages, fmt.Sprintf("- %s: %s", loc, err.Message))
	}
	for _, cause := range err.Causes {
		collectErrors(cause, messages)
	}
}
