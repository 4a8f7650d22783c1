// Package render writes a navbar in the formats consumed by the site framework
// and by people reading it in a terminal.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/list"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/mchmarny/sitenav/pkg/nav"
)

// Format is an output format name.
type Format string

const (
	FormatTS       Format = "ts"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatTree     Format = "tree"
	FormatTable    Format = "table"
	FormatMarkdown Format = "markdown"
)

// DefaultFramework is the module that exports the navbar builder.
const DefaultFramework = "vuepress-theme-hope"

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatTS, FormatJSON, FormatYAML, FormatTree, FormatTable, FormatMarkdown}
}

// ParseFormat validates a format name. "md" is accepted for markdown.
func ParseFormat(s string) (Format, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "md" {
		return FormatMarkdown, nil
	}
	for _, f := range Formats() {
		if string(f) == s {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", nav.ErrUnknownFormat, s)
}

// Options tune the output.
type Options struct {
	// Framework is the module imported by the ts format.
	Framework string
}

// Write renders nb to w.
func Write(w io.Writer, nb *nav.Navbar, format Format, opts Options) error {
	switch format {
	case FormatTS:
		return TypeScript(w, nb, opts.Framework)
	case FormatJSON:
		return nav.Encode(w, nb, nav.FormatJSON)
	case FormatYAML:
		return nav.Encode(w, nb, nav.FormatYAML)
	case FormatTree:
		return Tree(w, nb)
	case FormatTable:
		return Table(w, nb.Links(), false)
	case FormatMarkdown:
		return Table(w, nb.Links(), true)
	default:
		return fmt.Errorf("%w: %q", nav.ErrUnknownFormat, format)
	}
}

// Tree prints the menu hierarchy with effective paths.
func Tree(w io.Writer, nb *nav.Navbar) error {
	l := list.NewWriter()
	l.SetStyle(list.StyleConnectedLight)

	depth := 0
	nb.Walk(func(e nav.Entry, _ nav.Node) bool {
		for depth < e.Depth {
			l.Indent()
			depth++
		}
		for depth > e.Depth {
			l.UnIndent()
			depth--
		}

		label := e.Text
		if e.Kind == nav.KindGroup {
			label += " (" + e.Path + ")"
		} else if e.Text != e.Path {
			label += " -> " + e.Path
		}
		l.AppendItem(label)
		return true
	})

	if l.Length() == 0 {
		_, err := fmt.Fprintln(w, "(empty navbar)")
		return err
	}

	_, err := fmt.Fprintln(w, l.Render())
	return err
}

// Table prints resolved link entries, as markdown when md is set.
func Table(w io.Writer, entries []nav.Entry, md bool) error {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Text", "Path", "Icon", "Menu"})

	for i, e := range entries {
		t.AppendRow(table.Row{
			strconv.Itoa(i + 1),
			e.Text,
			e.Path,
			e.Icon,
			strings.Join(e.Trail, " / "),
		})
	}

	var out string
	if md {
		out = t.RenderMarkdown()
	} else {
		out = t.Render()
	}

	_, err := fmt.Fprintln(w, out)
	return err
}
