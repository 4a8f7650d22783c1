package menu

import (
	"time"

	"github.com/mchmarny/sitenav/pkg/nav"
)

// Index describes the menu at /.
type Index struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Version     string    `json:"version,omitempty"`
	BuildID     string    `json:"build_id"`
	BuiltAt     time.Time `json:"built_at"`
	Source      string    `json:"source"`
	Nodes       int       `json:"nodes"`
	Links       int       `json:"links"`
	Findings    int       `json:"findings"`
	Endpoints   []string  `json:"endpoints"`
}

// Item is a resolved navbar link as served by /links and /preview.
type Item struct {
	// Path is the effective link path, unique identifier of the item within a build.
	Path string `json:"path"`

	// Title is the label of the link.
	Title string `json:"title"`

	// Icon is the framework icon identifier.
	Icon string `json:"icon,omitempty"`

	// Kind is leaf or link.
	Kind nav.Kind `json:"kind"`

	// Menu is the chain of enclosing group labels.
	Menu []string `json:"menu,omitempty"`
}

func itemsFrom(entries []nav.Entry) []Item {
	items := make([]Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, Item{
			Path:  e.Path,
			Title: e.Text,
			Icon:  e.Icon,
			Kind:  e.Kind,
			Menu:  e.Trail,
		})
	}
	return items
}
