// Package label renders the "dev" badge placed next to headings of features
// that are still under development.
//
// The badge takes no input: every render yields byte-identical markup.
package label

import (
	"bytes"
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Text is the badge's fixed content.
const Text = "dev"

// Declaration is one inline CSS property.
type Declaration struct {
	Property string
	Value    string
}

var declarations = []Declaration{
	{"position", "relative"},
	{"bottom", "0.3rem"},
	{"background", "#d8f7df"},
	{"border", "solid 1px #b8d7bf"},
	{"border-radius", "0.2rem"},
	{"color", "#666"},
	{"padding", "0.15rem 0.35rem"},
	{"margin-left", "0.5rem"},
	{"font-size", "0.9rem"},
	{"font-weight", "400"},
}

// Declarations returns the badge's inline style, in render order.
func Declarations() []Declaration {
	out := make([]Declaration, len(declarations))
	copy(out, declarations)
	return out
}

// Style returns the inline style attribute value.
func Style() string {
	parts := make([]string, len(declarations))
	for i, d := range declarations {
		parts[i] = d.Property + ": " + d.Value
	}
	return strings.Join(parts, "; ") + ";"
}

// Node builds a fresh HTML node tree for the badge.
func Node() *html.Node {
	span := &html.Node{
		Type:     html.ElementNode,
		Data:     atom.Span.String(),
		DataAtom: atom.Span,
		Attr:     []html.Attribute{{Key: "style", Val: Style()}},
	}
	span.AppendChild(&html.Node{Type: html.TextNode, Data: Text})
	return span
}

// Dev renders the badge markup.
func Dev() string {
	var buf bytes.Buffer
	// Rendering a well-formed element into a bytes.Buffer cannot fail.
	_ = html.Render(&buf, Node())
	return buf.String()
}

// Shortcode returns the badge as a Hugo shortcode template body ({{< dev >}}).
func Shortcode() string {
	return Dev() + "\n"
}

// ReactComponent returns the badge as a React component module for Docusaurus.
func ReactComponent() string {
	var b strings.Builder
	b.WriteString("import React from \"react\";\n\n")
	b.WriteString("export default function Dev() {\n")
	b.WriteString("  return (\n    <span\n      style={{\n")
	for _, d := range declarations {
		fmt.Fprintf(&b, "        %s: %q,\n", camelCase(d.Property), d.Value)
	}
	b.WriteString("      }}\n    >\n")
	fmt.Fprintf(&b, "      %s\n", Text)
	b.WriteString("    </span>\n  );\n}\n")
	return b.String()
}

func camelCase(property string) string {
	parts := strings.Split(property, "-")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}
