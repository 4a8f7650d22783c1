package nav

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const blogYAML = `
- /
- text: 博客
  icon: pen-to-square
  prefix: /posts/
  children:
    - text: LangGraph
      icon: pen-to-square
      prefix: langgraph/
      children:
        - text: LangGraph中的interrupt实现人机交互（HITL）
          icon: pen-to-square
          link: langgraph_interrupt
    - text: Hertz 源码学习笔记
      icon: pen-to-square
      link: hertz
`

func TestDecodeYAML(t *testing.T) {
	nb, err := Decode(strings.NewReader(blogYAML), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, blogNavbar().Nodes(), nb.Nodes())
}

func TestCommentedNodesAreInert(t *testing.T) {
	commented := strings.Replace(blogYAML, "    - text: Hertz", `    # - text: 樱桃
    #   icon: pen-to-square
    #   link: cherry
    # - tomato
    - text: Hertz`, 1)

	with, err := Decode(strings.NewReader(commented), FormatYAML)
	require.NoError(t, err)
	without, err := Decode(strings.NewReader(blogYAML), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, without.Nodes(), with.Nodes())
	assert.Equal(t, without.Links(), with.Links())
}

func TestJSONRoundTrip(t *testing.T) {
	data, err := json.Marshal(blogNavbar())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"children":[`)
	assert.True(t, strings.HasPrefix(string(data), `["/",`), string(data))

	var nb Navbar
	require.NoError(t, json.Unmarshal(data, &nb))
	assert.Equal(t, blogNavbar().Nodes(), nb.Nodes())
}

func TestNodeJSONShapes(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"leaf", Leaf("tomato"), `"tomato"`},
		{"link", Item("樱桃", icon, "cherry"), `{"text":"樱桃","icon":"pen-to-square","link":"cherry"}`},
		{"link without icon", Item("a", "", "b"), `{"text":"a","link":"b"}`},
		{"empty group", Group("g", "", ""), `{"text":"g","children":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := json.Marshal(tt.node)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(data))

			var back Node
			require.NoError(t, json.Unmarshal(data, &back))
			assert.Equal(t, tt.node.Kind(), back.Kind())
			assert.Equal(t, tt.node.Label(), back.Label())
		})
	}
}

func TestDecodeRejectsInvalidNodes(t *testing.T) {
	_, err := Decode(strings.NewReader(`["/", 42]`), FormatJSON)
	assert.ErrorIs(t, err, ErrInvalidNode)

	_, err = Decode(strings.NewReader("- [a, b]\n"), FormatYAML)
	assert.ErrorIs(t, err, ErrInvalidNode)

	_, err = Decode(strings.NewReader("[]"), Format("toml"))
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestKindJSONRoundTrip(t *testing.T) {
	entries := blogNavbar().Entries()

	data, err := json.Marshal(entries)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"kind":"group"`)

	var got []Entry
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, entries, got)

	var k Kind
	assert.ErrorIs(t, k.UnmarshalText([]byte("folder")), ErrInvalidNode)
}

func TestDecodeRejectsTrailingData(t *testing.T) {
	_, err := Decode(strings.NewReader(`["/"] garbage`), FormatJSON)
	assert.Error(t, err)

	_, err = Decode(strings.NewReader(`["/"] ["b"]`), FormatJSON)
	assert.Error(t, err)

	_, err = Decode(strings.NewReader("- /\n---\n- b\n"), FormatYAML)
	assert.Error(t, err)

	nb, err := Decode(strings.NewReader("[\"/\"]\n\n"), FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, 1, nb.Len())
}

func TestDecodeEmptyDocument(t *testing.T) {
	nb, err := Decode(strings.NewReader(""), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, 0, nb.Len())
}

func TestEncodeYAMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, blogNavbar(), FormatYAML))
	assert.Contains(t, buf.String(), "prefix: /posts/")

	nb, err := Decode(&buf, FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, blogNavbar().Links(), nb.Links())
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "navbar.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(blogYAML), 0o600))

	nb, err := Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, 2, nb.Len())

	_, err = Load(filepath.Join(dir, "navbar.ts"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("a/b/navbar.YML")
	require.NoError(t, err)
	assert.Equal(t, FormatYAML, f)

	f, err = FormatFromPath("navbar.json")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)
}
