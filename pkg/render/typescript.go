package render

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mchmarny/sitenav/pkg/nav"
)

const indent = "  "

// TypeScript writes the navbar as the framework's navbar module:
//
//	import { navbar } from "vuepress-theme-hope";
//
//	export default navbar([ ... ]);
func TypeScript(w io.Writer, nb *nav.Navbar, framework string) error {
	if framework == "" {
		framework = DefaultFramework
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "import { navbar } from %s;\n\n", quote(framework))
	fmt.Fprintln(bw, "export default navbar([")
	for _, n := range nb.Nodes() {
		writeNode(bw, n, 1)
	}
	fmt.Fprintln(bw, "]);")

	return bw.Flush()
}

func writeNode(w *bufio.Writer, n nav.Node, depth int) {
	pad := strings.Repeat(indent, depth)

	switch n.Kind() {
	case nav.KindLeaf:
		fmt.Fprintf(w, "%s%s,\n", pad, quote(n.Link))
	case nav.KindLink:
		fields := []string{"text: " + quote(n.Text)}
		if n.Icon != "" {
			fields = append(fields, "icon: "+quote(n.Icon))
		}
		fields = append(fields, "link: "+quote(n.Link))
		fmt.Fprintf(w, "%s{ %s },\n", pad, strings.Join(fields, ", "))
	case nav.KindGroup:
		inner := pad + indent
		fmt.Fprintf(w, "%s{\n", pad)
		fmt.Fprintf(w, "%stext: %s,\n", inner, quote(n.Text))
		if n.Icon != "" {
			fmt.Fprintf(w, "%sicon: %s,\n", inner, quote(n.Icon))
		}
		if n.Prefix != "" {
			fmt.Fprintf(w, "%sprefix: %s,\n", inner, quote(n.Prefix))
		}
		if len(n.Children) == 0 {
			fmt.Fprintf(w, "%schildren: [],\n", inner)
		} else {
			fmt.Fprintf(w, "%schildren: [\n", inner)
			for _, c := range n.Children {
				writeNode(w, c, depth+2)
			}
			fmt.Fprintf(w, "%s],\n", inner)
		}
		fmt.Fprintf(w, "%s},\n", pad)
	}
}

// quote produces a TypeScript string literal. JSON string escapes are a subset of
// TypeScript's; non-ASCII text such as CJK labels is kept as is and invalid UTF-8
// becomes U+FFFD.
func quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}
