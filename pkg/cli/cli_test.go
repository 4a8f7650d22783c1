package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mchmarny/sitenav/pkg/nav"
)

const brokenYAML = `
- /
- text: 博客
  prefix: /posts
  children:
    - text: Hertz
      link: hertz
    - text: ""
      link: hertz
`

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestVersionCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "sitenav "+Version)
	assert.Contains(t, out, "commit: ")
}

func TestShowBuiltIn(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := run(t, "show")
	require.NoError(t, err)
	assert.Contains(t, out, "Hertz 源码学习笔记 -> /posts/hertz")

	out, _, err = run(t, "show", "--as", "ts")
	require.NoError(t, err)
	assert.Contains(t, out, `export default navbar([`)

	_, _, err = run(t, "show", "--as", "html")
	assert.ErrorIs(t, err, nav.ErrUnknownFormat)
}

func TestLinks(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := run(t, "links", "--markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "/posts/langgraph/langgraph_interrupt")
	assert.Contains(t, out, "/posts/hertz")
}

func TestBuildWritesModule(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	out, errOut, err := run(t, "build", "--log-format", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote src/.vuepress/navbar.ts (3 links)")
	assert.Contains(t, errOut, "navbar written")

	data, err := os.ReadFile(filepath.Join(dir, "src", ".vuepress", "navbar.ts"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), `import { navbar } from "vuepress-theme-hope";`))
	assert.Contains(t, string(data), `prefix: "langgraph/",`)
}

func TestBuildFromSourceWithConfigFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	src, err := os.ReadFile(filepath.Join(origWD(t), "..", "site", "testdata", "navbar.yaml"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "navbar.yaml"), src, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sitenav.yaml"), []byte(`
source: navbar.yaml
format: json
output: public/navbar.json
`), 0o600))

	_, _, err = run(t, "build")
	require.NoError(t, err)

	nb, err := nav.Load(filepath.Join(dir, "public", "navbar.json"))
	require.NoError(t, err)
	assert.Equal(t, "/posts/hertz", nb.Links()[2].Path)

	out, _, err := run(t, "build", "--output", "-", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "prefix: langgraph/")
}

func TestBuildStrict(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "navbar.yaml"), []byte(brokenYAML), 0o600))

	_, _, err := run(t, "build", "--source", "navbar.yaml", "--output", "-")
	require.NoError(t, err)

	_, _, err = run(t, "build", "--source", "navbar.yaml", "--output", "-", "--strict")
	assert.ErrorIs(t, err, nav.ErrFindings)
}

func TestLint(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "navbar.yaml"), []byte(brokenYAML), 0o600))

	out, _, err := run(t, "lint")
	require.NoError(t, err)
	assert.Contains(t, out, "built-in: 3 link(s), 0 warning(s)")

	out, _, err = run(t, "lint", "--source", "navbar.yaml")
	assert.ErrorIs(t, err, nav.ErrFindings)
	assert.Contains(t, out, `warning [1]: prefix "/posts" does not end with /`)
	assert.Contains(t, out, "error [1].children[1]: link item has no text")
}

func TestSchemaValidationOfSource(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "navbar.json"), []byte(`["/", {"text": "a", "href": "b"}]`), 0o600))

	_, _, err := run(t, "show", "--source", "navbar.json")
	assert.ErrorContains(t, err, "schema validation failed")

	out, _, err := run(t, "show", "--source", "navbar.json", "--validate=false", "--as", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"link": ""`)
}

func TestSchemaCommand(t *testing.T) {
	t.Chdir(t.TempDir())

	out, _, err := run(t, "schema")
	require.NoError(t, err)
	assert.Contains(t, out, `"$defs"`)

	out, _, err = run(t, "schema", "config")
	require.NoError(t, err)
	assert.Contains(t, out, `"log_level"`)

	_, _, err = run(t, "schema", "other")
	assert.Error(t, err)
}

func TestServeWatchNeedsSource(t *testing.T) {
	t.Chdir(t.TempDir())

	_, _, err := run(t, "serve", "--watch")
	assert.ErrorContains(t, err, "--watch needs --source")
}

func TestDotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	// godotenv never overrides variables that are already set
	for _, k := range []string{"SITENAV_FORMAT", "SITENAV_OUTPUT"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("SITENAV_FORMAT=yaml\nSITENAV_OUTPUT=-\n"), 0o600))

	out, _, err := run(t, "build")
	require.NoError(t, err)
	assert.Contains(t, out, "- /")
	assert.Contains(t, out, "prefix: /posts/")
}

var testWD string

func init() {
	testWD, _ = os.Getwd()
}

// origWD is the package directory, captured before tests change directories.
func origWD(t *testing.T) string {
	t.Helper()
	require.NotEmpty(t, testWD)
	return testWD
}
