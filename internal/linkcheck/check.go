package linkcheck

import (
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/sviosdi/svldoc/internal/config"
	"github.com/sviosdi/svldoc/internal/docs"
	"github.com/sviosdi/svldoc/internal/foundation/errors"
	"github.com/sviosdi/svldoc/internal/logfields"
	"github.com/sviosdi/svldoc/internal/markdown"
)

// Check resolves every internal link of cfg and of the indexed pages.
//
// Navbar and footer docIds must name a discovered doc. Internal paths ("to"
// targets and absolute links inside pages) are only checked when they fall
// under the docs or blog route; other paths belong to pages the framework
// serves on its own. Relative links ending in .md or .mdx must name a
// discovered file.
func Check(cfg *config.SiteConfig, idx *docs.Index) *Result {
	c := &checker{cfg: cfg, idx: idx, result: &Result{}}

	for i, item := range cfg.ThemeConfig.Navbar.Items {
		c.target(fmt.Sprintf("themeConfig.navbar.items[%d]", i), item.Target)
	}
	for g, group := range cfg.ThemeConfig.Footer.Links {
		for i, link := range group.Items {
			c.target(fmt.Sprintf("themeConfig.footer.links[%d].items[%d]", g, i), link.Target)
		}
	}
	for _, page := range idx.Pages() {
		for _, link := range page.Links {
			c.pageLink(page, link)
		}
	}
	return c.result
}

type checker struct {
	cfg    *config.SiteConfig
	idx    *docs.Index
	result *Result
}

func (c *checker) report(scope Scope, source, target, reason string) {
	policy := c.cfg.OnBrokenLinks
	if scope == ScopeMarkdown {
		policy = c.cfg.OnBrokenMarkdownLinks
	}
	if policy == config.BrokenLinkIgnore {
		return
	}
	c.result.Issues = append(c.result.Issues, Issue{
		Scope:  scope,
		Policy: policy,
		Source: source,
		Target: target,
		Reason: reason,
	})
}

func (c *checker) target(source string, t config.Target) {
	switch t.Kind() {
	case config.TargetDoc:
		c.result.Checked++
		if _, ok := c.idx.Doc(t.DocID); !ok {
			c.report(ScopeLinks, source, t.DocID, "no document with this id")
		}
	case config.TargetPath:
		c.route(source, t.To)
	}
}

func (c *checker) route(source, route string) {
	if !c.managed(route) {
		return
	}
	c.result.Checked++
	if !c.idx.HasRoute(route) {
		c.report(ScopeLinks, source, route, "no page is served at this path")
	}
}

// managed reports whether route lies under the docs or blog route. A plugin
// served at the site root shares it with the pages plugin, so its routes are
// not claimed.
func (c *checker) managed(route string) bool {
	for _, base := range []string{c.cfg.DocsRoute(), c.cfg.BlogRoute()} {
		if base == "" || base == "/" {
			continue
		}
		if route == base || strings.HasPrefix(route, strings.TrimRight(base, "/")+"/") {
			return true
		}
	}
	return false
}

func (c *checker) pageLink(page *docs.Page, link markdown.Link) {
	if link.Kind == markdown.LinkKindImage || link.Kind == markdown.LinkKindAuto {
		return
	}
	dest := link.Destination
	if dest == "" || strings.HasPrefix(dest, "#") || strings.Contains(dest, "://") || strings.HasPrefix(dest, "mailto:") {
		return
	}
	if strings.HasPrefix(dest, "/") {
		c.route(page.RelPath, dest)
		return
	}

	file := dest
	if i := strings.IndexAny(file, "?#"); i >= 0 {
		file = file[:i]
	}
	switch strings.ToLower(path.Ext(file)) {
	case ".md", ".mdx":
	default:
		return
	}
	c.result.Checked++
	resolved := path.Join(path.Dir(page.RelPath), file)
	if strings.HasPrefix(resolved, "../") {
		c.report(ScopeMarkdown, page.RelPath, dest, "link leaves the "+string(page.Kind)+" directory")
		return
	}
	if _, ok := c.idx.File(page.Kind, resolved); !ok {
		c.report(ScopeMarkdown, page.RelPath, dest, "no such markdown file")
	}
}

// Err logs warn-level issues and returns a link error when any issue is
// governed by the throw policy.
func (r *Result) Err() error {
	for _, issue := range r.Issues {
		if issue.Policy == config.BrokenLinkWarn {
			slog.Warn("Broken link",
				slog.String("source", issue.Source),
				logfields.Target(issue.Target),
				logfields.Policy(string(issue.Policy)),
				slog.String("reason", issue.Reason))
		}
	}
	if !r.HasErrors() {
		return nil
	}
	n := r.Count(config.BrokenLinkThrow)
	first := r.firstThrow()
	return errors.LinkError(fmt.Sprintf("%d broken link(s)", n)).
		WithContext("count", n).
		WithContext("first_source", first.Source).
		WithContext("first_target", first.Target).
		Build()
}

func (r *Result) firstThrow() Issue {
	for _, issue := range r.Issues {
		if issue.Policy == config.BrokenLinkThrow {
			return issue
		}
	}
	return Issue{}
}
