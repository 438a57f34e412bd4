// Package markdown extracts link destinations from documentation pages.
package markdown

import (
	"sort"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// LinkKind is the markdown construct a link came from.
type LinkKind string

const (
	LinkKindInline     LinkKind = "inline"
	LinkKindImage      LinkKind = "image"
	LinkKindAuto       LinkKind = "auto"
	LinkKindDefinition LinkKind = "definition"
)

// Link is one outgoing reference of a page.
type Link struct {
	Kind        LinkKind
	Destination string
}

var md = goldmark.New()

// ExtractLinks parses body (frontmatter removed) and returns its links in
// document order, followed by reference definitions sorted by label. Code
// spans and code blocks are not inspected.
func ExtractLinks(body []byte) []Link {
	ctx := parser.NewContext()
	root := md.Parser().Parse(text.NewReader(body), parser.WithContext(ctx))

	var links []Link
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *gmast.Link:
			links = append(links, Link{Kind: LinkKindInline, Destination: string(node.Destination)})
		case *gmast.Image:
			links = append(links, Link{Kind: LinkKindImage, Destination: string(node.Destination)})
		case *gmast.AutoLink:
			links = append(links, Link{Kind: LinkKindAuto, Destination: string(node.URL(body))})
		}
		return gmast.WalkContinue, nil
	})

	refs := ctx.References()
	sort.Slice(refs, func(i, j int) bool { return string(refs[i].Label()) < string(refs[j].Label()) })
	for _, ref := range refs {
		links = append(links, Link{Kind: LinkKindDefinition, Destination: string(ref.Destination())})
	}
	return links
}
