// Package linkcheck verifies that navbar, footer and markdown links resolve
// against the discovered pages, and applies the site's broken-link policies.
package linkcheck

import "github.com/sviosdi/svldoc/internal/config"

// Scope says which policy governs an issue.
type Scope string

const (
	// ScopeLinks covers navbar and footer targets and absolute site paths in pages (onBrokenLinks).
	ScopeLinks Scope = "links"
	// ScopeMarkdown covers relative links to .md/.mdx files (onBrokenMarkdownLinks).
	ScopeMarkdown Scope = "markdown"
)

// Issue is one unresolved link.
type Issue struct {
	Scope  Scope
	Policy config.BrokenLinkPolicy
	Source string // config field path or page file
	Target string
	Reason string
}

// Result contains every issue found by Check, ignored ones excluded.
type Result struct {
	Issues  []Issue
	Checked int
}

// Count returns the number of issues under policy.
func (r *Result) Count(policy config.BrokenLinkPolicy) int {
	n := 0
	for _, issue := range r.Issues {
		if issue.Policy == policy {
			n++
		}
	}
	return n
}

// HasErrors reports whether any issue must fail the build.
func (r *Result) HasErrors() bool {
	return r.Count(config.BrokenLinkThrow) > 0
}
