package nav

import (
	"errors"
	"fmt"
	"strings"
)

// ErrFindings is wrapped by Findings.Err when a check reported problems.
var ErrFindings = errors.New("navbar check failed")

// Severity ranks a check finding.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Finding is one authoring problem discovered by Check.
type Finding struct {
	Location string   `json:"location"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

func (f Finding) String() string {
	return fmt.Sprintf("%s %s: %s", f.Severity, f.Location, f.Message)
}

// Findings is the result of Check.
type Findings []Finding

// Errors counts findings with SeverityError.
func (fs Findings) Errors() int {
	n := 0
	for _, f := range fs {
		if f.Severity == SeverityError {
			n++
		}
	}
	return n
}

// Err returns nil when there are no findings at all.
func (fs Findings) Err() error {
	if len(fs) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(fs))
	for _, f := range fs {
		msgs = append(msgs, f.String())
	}
	return fmt.Errorf("%w: %d error(s), %d warning(s)\n%s",
		ErrFindings, fs.Errors(), len(fs)-fs.Errors(), strings.Join(msgs, "\n"))
}

// Check looks for authoring mistakes the framework would only reveal as broken pages.
// It never modifies the navbar; the findings are advisory.
func (n *Navbar) Check() Findings {
	var out Findings
	seen := map[string]string{}

	n.Walk(func(e Entry, node Node) bool {
		switch node.kind {
		case KindLeaf:
			if node.Link == "" {
				out = append(out, Finding{e.Location, SeverityError, "empty link identifier"})
			}
		case KindLink:
			if node.Text == "" {
				out = append(out, Finding{e.Location, SeverityError, "link item has no text"})
			}
			if node.Link == "" {
				out = append(out, Finding{e.Location, SeverityError, "link item has no link"})
			}
		case KindGroup:
			if node.Text == "" {
				out = append(out, Finding{e.Location, SeverityError, "group has no text"})
			}
			if len(node.Children) == 0 {
				out = append(out, Finding{e.Location, SeverityWarning, "group has no children"})
			}
			if node.Prefix != "" && !strings.HasSuffix(node.Prefix, "/") {
				out = append(out, Finding{e.Location, SeverityWarning,
					fmt.Sprintf("prefix %q does not end with /", node.Prefix)})
			}
			return true
		}

		if prev, ok := seen[e.Path]; ok && e.Path != "" {
			out = append(out, Finding{e.Location, SeverityWarning,
				fmt.Sprintf("path %s already used at %s", e.Path, prev)})
		} else {
			seen[e.Path] = e.Location
		}
		return true
	})

	return out
}
