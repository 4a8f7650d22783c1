// Package schema describes navbar documents and the sitenav config file as JSON Schema
// and validates raw documents against it before they are decoded.
package schema

import (
	"encoding/json"

	gen "github.com/invopop/jsonschema"

	"github.com/mchmarny/sitenav/pkg/config"
)

const (
	// Draft is the JSON Schema dialect of the generated schemas.
	Draft = "https://json-schema.org/draft/2020-12/schema"

	// NavbarID identifies the navbar document schema.
	NavbarID = "https://sitenav.dev/schema/navbar.json"

	nodeRef = "#/$defs/Node"
)

// Navbar returns the schema of a navbar document: an ordered array of nodes, each
// one a string, a link item or a group item.
func Navbar() *gen.Schema {
	str := func(desc string) *gen.Schema {
		return &gen.Schema{Type: "string", Description: desc}
	}

	linkProps := gen.NewProperties()
	linkProps.Set("text", str("Display label"))
	linkProps.Set("icon", str("Icon identifier"))
	linkProps.Set("link", str("Path fragment, resolved against the enclosing prefixes"))

	groupProps := gen.NewProperties()
	groupProps.Set("text", str("Display label"))
	groupProps.Set("icon", str("Icon identifier"))
	groupProps.Set("prefix", str("Prepended to relative links of all descendants"))
	groupProps.Set("children", &gen.Schema{
		Type:        "array",
		Description: "Ordered sub-entries",
		Items:       &gen.Schema{Ref: nodeRef},
	})

	node := &gen.Schema{
		Description: "Navigation node",
		OneOf: []*gen.Schema{
			{Type: "string", Description: "Shorthand link identifier"},
			{
				Type:                 "object",
				Title:                "Link",
				Properties:           linkProps,
				Required:             []string{"text", "link"},
				AdditionalProperties: gen.FalseSchema,
			},
			{
				Type:                 "object",
				Title:                "Group",
				Properties:           groupProps,
				Required:             []string{"text", "children"},
				AdditionalProperties: gen.FalseSchema,
			},
		},
	}

	return &gen.Schema{
		Version:     Draft,
		ID:          NavbarID,
		Title:       "Site navigation bar",
		Description: "Ordered navigation tree handed to the site framework's navbar builder.",
		Type:        "array",
		Items:       &gen.Schema{Ref: nodeRef},
		Definitions: gen.Definitions{"Node": node},
	}
}

// Config reflects the sitenav config file.
func Config() *gen.Schema {
	r := &gen.Reflector{
		AllowAdditionalProperties:  false,
		ExpandedStruct:             true,
		RequiredFromJSONSchemaTags: true,
		FieldNameTag:               "koanf",
	}

	s := r.Reflect(&config.Config{})
	s.Title = "sitenav configuration"
	s.Description = "Schema for sitenav.yaml."

	return s
}

// Marshal renders a schema as indented JSON.
func Marshal(s *gen.Schema) ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}
