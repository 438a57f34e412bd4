package commands

import (
	stderrors "errors"

	"github.com/sviosdi/svldoc/internal/config"
	"github.com/sviosdi/svldoc/internal/docs"
	derrors "github.com/sviosdi/svldoc/internal/docs/errors"
	"github.com/sviosdi/svldoc/internal/foundation/errors"
	"github.com/sviosdi/svldoc/internal/linkcheck"
)

// CheckLinksCmd implements the 'check-links' command.
type CheckLinksCmd struct {
	Root    string `default:"." help:"Site root the docs and blog directories are relative to" type:"path"`
	DocsDir string `name:"docs-dir" help:"Override the docs directory of the classic preset"`
	BlogDir string `name:"blog-dir" help:"Override the blog directory of the classic preset"`

	OnBrokenLinks         string `name:"on-broken-links" help:"Override onBrokenLinks (throw, warn or ignore)"`
	OnBrokenMarkdownLinks string `name:"on-broken-markdown-links" help:"Override onBrokenMarkdownLinks (throw, warn or ignore)"`
}

func (c *CheckLinksCmd) Run(g *Global, root *CLI) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	if d := cfg.Docs(); d != nil && c.DocsDir != "" {
		d.Path = c.DocsDir
	}
	if b := cfg.Blog(); b != nil && c.BlogDir != "" {
		b.Path = c.BlogDir
	}
	if err := overridePolicy(&cfg.OnBrokenLinks, "on-broken-links", c.OnBrokenLinks); err != nil {
		return err
	}
	if err := overridePolicy(&cfg.OnBrokenMarkdownLinks, "on-broken-markdown-links", c.OnBrokenMarkdownLinks); err != nil {
		return err
	}

	idx, err := docs.Discover(c.Root, cfg)
	if err != nil {
		category := errors.CategoryFileSystem
		if stderrors.Is(err, derrors.ErrDuplicateID) {
			category = errors.CategoryValidation
		}
		return errors.WrapError(err, category, "documentation discovery failed").
			WithContext("root", c.Root).
			Build()
	}

	result := linkcheck.Check(cfg, idx)
	if err := linkcheck.WriteText(g.out(), result); err != nil {
		return errors.WrapError(err, errors.CategoryInternal, "failed to write link report").Build()
	}
	return result.Err()
}

func overridePolicy(dst *config.BrokenLinkPolicy, flag, raw string) error {
	if raw == "" {
		return nil
	}
	policy, err := config.ParseBrokenLinkPolicy(raw)
	if err != nil {
		return errors.WrapError(err, errors.CategoryValidation, "invalid --"+flag).Build()
	}
	*dst = policy
	return nil
}
