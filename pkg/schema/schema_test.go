package schema

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/sitenav/pkg/nav"
	"github.com/mchmarny/sitenav/pkg/site"
)

func TestNavbarSchemaShape(t *testing.T) {
	data, err := Marshal(Navbar())
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, Draft, doc["$schema"])
	assert.Equal(t, "array", doc["type"])
	defs, ok := doc["$defs"].(map[string]interface{})
	require.True(t, ok)
	assert.Contains(t, defs, "Node")
}

func TestValidateDocuments(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	for _, tc := range []struct {
		path   string
		format nav.Format
	}{
		{"../site/testdata/navbar.yaml", nav.FormatYAML},
		{"../site/testdata/navbar.json", nav.FormatJSON},
	} {
		t.Run(tc.path, func(t *testing.T) {
			data, err := os.ReadFile(tc.path)
			require.NoError(t, err)
			assert.NoError(t, v.ValidateDocument(data, tc.format))
		})
	}
}

func TestValidateNavbarValue(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)
	assert.NoError(t, v.Validate(site.Navbar()))
	assert.NoError(t, v.ValidateDocument(nil, nav.FormatYAML))
}

func TestValidateRejects(t *testing.T) {
	v, err := NewValidator()
	require.NoError(t, err)

	tests := []struct {
		name string
		doc  string
	}{
		{"not an array", `{"text": "a", "link": "b"}`},
		{"number node", `["/", 1]`},
		{"link without link", `[{"text": "a"}]`},
		{"unknown key", `[{"text": "a", "link": "b", "href": "c"}]`},
		{"group children not array", `[{"text": "g", "children": "x"}]`},
		{"nested invalid", `[{"text": "g", "prefix": "/g/", "children": [{"icon": "x"}]}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateDocument([]byte(tt.doc), nav.FormatJSON)
			assert.ErrorContains(t, err, "schema validation failed")
		})
	}

	assert.ErrorIs(t, v.ValidateDocument([]byte("[]"), nav.Format("toml")), nav.ErrUnknownFormat)
	assert.Error(t, v.ValidateDocument([]byte("- [unclosed"), nav.FormatYAML))
}

func TestConfigSchema(t *testing.T) {
	data, err := Marshal(Config())
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))

	props, ok := doc["properties"].(map[string]interface{})
	require.True(t, ok)
	for _, key := range []string{"source", "output", "format", "port", "watch", "log_level"} {
		assert.Contains(t, props, key)
	}
	assert.NotContains(t, props, "File")
	assert.NotContains(t, doc, "required")
}
