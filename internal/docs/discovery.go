// Package docs discovers the docs and blog pages of a site and indexes them by
// document id, route and file path.
package docs

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/sviosdi/svldoc/internal/config"
	derrors "github.com/sviosdi/svldoc/internal/docs/errors"
	"github.com/sviosdi/svldoc/internal/frontmatter"
	"github.com/sviosdi/svldoc/internal/logfields"
	"github.com/sviosdi/svldoc/internal/markdown"
)

// Kind tells docs pages from blog posts.
type Kind string

const (
	KindDoc  Kind = "doc"
	KindBlog Kind = "blog"
)

// Page is one discovered markdown file.
type Page struct {
	Kind        Kind
	Path        string // filesystem path
	RelPath     string // slash separated, relative to the docs or blog directory
	ID          string
	Route       string // site-relative, without baseUrl
	Title       string
	Draft       bool
	Links       []markdown.Link
	Fingerprint string
}

var (
	numberPrefix = regexp.MustCompile(`^\d+[-_.]`)
	datePrefix   = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})-(.+)$`)
)

// Discover walks the docs and blog directories of the classic preset under
// root. Directories that do not exist are skipped with a log line.
func Discover(root string, cfg *config.SiteConfig) (*Index, error) {
	idx := newIndex()
	if cfg.BlogRoute() != "" {
		idx.routes[cfg.BlogRoute()] = nil
	}

	if d := cfg.Docs(); d != nil {
		if err := idx.walk(filepath.Join(root, d.Path), KindDoc, cfg); err != nil {
			return nil, err
		}
	}
	if b := cfg.Blog(); b != nil {
		if err := idx.walk(filepath.Join(root, b.Path), KindBlog, cfg); err != nil {
			return nil, err
		}
	}

	sort.Slice(idx.pages, func(i, j int) bool {
		if idx.pages[i].Kind != idx.pages[j].Kind {
			return idx.pages[i].Kind == KindDoc
		}
		return idx.pages[i].RelPath < idx.pages[j].RelPath
	})
	slog.Info("Documentation discovered", logfields.Path(root), logfields.Count(len(idx.pages)))
	return idx, nil
}

func (idx *Index) walk(dir string, kind Kind, cfg *config.SiteConfig) error {
	if _, err := os.Stat(dir); stderrors.Is(err, fs.ErrNotExist) {
		slog.Warn("Documentation path not found", logfields.Path(dir), slog.String("kind", string(kind)))
		return nil
	}

	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		name := d.Name()
		if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_") {
			if d.IsDir() && p != dir {
				return filepath.SkipDir
			}
			if !d.IsDir() {
				return nil
			}
		}
		if d.IsDir() || !isMarkdownFile(name) {
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		page, err := readPage(p, filepath.ToSlash(rel), kind, cfg)
		if err != nil {
			return err
		}
		if prev, dup := idx.byID[idx.key(page.Kind, page.ID)]; dup {
			return fmt.Errorf("%w: %q used by %s and %s", derrors.ErrDuplicateID, page.ID, prev.RelPath, page.RelPath)
		}
		idx.add(page)
		slog.Debug("Discovered page", logfields.File(page.RelPath), logfields.DocID(page.ID), slog.String("route", page.Route))
		return nil
	})
	if err != nil && !stderrors.Is(err, derrors.ErrDuplicateID) && !stderrors.Is(err, derrors.ErrFileReadFailed) {
		return fmt.Errorf("%w: %s: %w", derrors.ErrDocsDirWalkFailed, dir, err)
	}
	return err
}

func readPage(p, rel string, kind Kind, cfg *config.SiteConfig) (*Page, error) {
	content, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", derrors.ErrFileReadFailed, p, err)
	}
	parsed, err := frontmatter.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", derrors.ErrFileReadFailed, p, err)
	}

	fp, err := Fingerprint(parsed)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", derrors.ErrFileReadFailed, p, err)
	}

	page := &Page{
		Kind:        kind,
		Path:        p,
		RelPath:     rel,
		Title:       parsed.Meta.Title,
		Draft:       parsed.Meta.Draft,
		Links:       markdown.ExtractLinks(parsed.Body),
		Fingerprint: fp,
	}
	switch kind {
	case KindDoc:
		page.ID = DocID(rel, parsed.Meta.ID)
		page.Route = docRoute(cfg, page.ID, rel, parsed.Meta.Slug)
	case KindBlog:
		page.ID = strings.TrimSuffix(rel, path.Ext(rel))
		page.Route = blogRoute(cfg.BlogRoute(), rel, parsed.Meta.Slug)
	}
	return page, nil
}

// DocID derives a document id from its path relative to the docs directory.
// Numeric ordering prefixes ("01-") are stripped from every segment and a
// frontmatter id replaces the file name part.
func DocID(rel, frontmatterID string) string {
	rel = strings.TrimSuffix(rel, path.Ext(rel))
	dir, file := path.Split(rel)

	var segments []string
	for _, s := range strings.Split(strings.Trim(dir, "/"), "/") {
		if s != "" {
			segments = append(segments, numberPrefix.ReplaceAllString(s, ""))
		}
	}
	if frontmatterID != "" {
		file = frontmatterID
	} else {
		file = numberPrefix.ReplaceAllString(file, "")
	}
	return strings.Join(append(segments, file), "/")
}

func docRoute(cfg *config.SiteConfig, id, rel, slug string) string {
	base := strings.TrimRight(cfg.DocsRoute(), "/")
	switch {
	case strings.HasPrefix(slug, "/"):
		return base + slug
	case slug != "":
		return base + "/" + path.Join(path.Dir(id), slug)
	}
	name := strings.ToLower(path.Base(strings.TrimSuffix(rel, path.Ext(rel))))
	if name == "index" || name == "readme" {
		dir := path.Dir(id)
		if dir == "." {
			return base + "/"
		}
		return base + "/" + dir
	}
	return base + "/" + id
}

func blogRoute(base, rel, slug string) string {
	base = strings.TrimRight(base, "/")
	if slug != "" {
		return base + "/" + strings.TrimLeft(slug, "/")
	}
	name := strings.TrimSuffix(rel, path.Ext(rel))
	dir, file := path.Split(name)
	if strings.EqualFold(file, "index") && dir != "" {
		file = path.Base(dir)
		dir = path.Dir(strings.TrimSuffix(dir, "/"))
		if dir == "." {
			dir = ""
		}
	}
	if m := datePrefix.FindStringSubmatch(file); m != nil {
		return base + "/" + path.Join(dir, m[1], m[2], m[3], m[4])
	}
	return base + "/" + path.Join(dir, file)
}

func isMarkdownFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".mdx", ".markdown":
		return true
	}
	return false
}
