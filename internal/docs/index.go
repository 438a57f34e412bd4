package docs

import (
	"crypto/sha256"
	"encoding/hex"
	"path"
	"sort"
	"strings"

	"github.com/inful/mdfp"
	"gopkg.in/yaml.v3"

	"github.com/sviosdi/svldoc/internal/frontmatter"
)

// Index is the set of discovered pages with lookups by id, route and file.
type Index struct {
	pages  []*Page
	byID   map[string]*Page
	routes map[string]*Page
	byPath map[string]*Page
}

func newIndex() *Index {
	return &Index{
		byID:   map[string]*Page{},
		routes: map[string]*Page{},
		byPath: map[string]*Page{},
	}
}

func (idx *Index) key(kind Kind, id string) string {
	return string(kind) + ":" + id
}

func (idx *Index) add(p *Page) {
	idx.pages = append(idx.pages, p)
	idx.byID[idx.key(p.Kind, p.ID)] = p
	idx.routes[normalizeRoute(p.Route)] = p
	idx.byPath[string(p.Kind)+":"+p.RelPath] = p
}

// Pages returns all pages, docs first, each group sorted by relative path.
func (idx *Index) Pages() []*Page {
	return idx.pages
}

// Doc returns the docs page with the given id.
func (idx *Index) Doc(id string) (*Page, bool) {
	p, ok := idx.byID[idx.key(KindDoc, id)]
	return p, ok
}

// HasRoute reports whether a page (or the blog listing) is served at route.
// Query strings and fragments are ignored.
func (idx *Index) HasRoute(route string) bool {
	_, ok := idx.routes[normalizeRoute(route)]
	return ok
}

// File returns the page of the given kind stored at rel (slash separated,
// relative to its docs or blog directory).
func (idx *Index) File(kind Kind, rel string) (*Page, bool) {
	p, ok := idx.byPath[string(kind)+":"+path.Clean(rel)]
	return p, ok
}

// Hash is a digest of every page id and fingerprint. It changes whenever a
// page is added, removed, renamed or edited.
func (idx *Index) Hash() string {
	entries := make([]string, 0, len(idx.pages))
	for _, p := range idx.pages {
		entries = append(entries, string(p.Kind)+"|"+p.ID+"|"+p.Fingerprint)
	}
	sort.Strings(entries)
	h := sha256.Sum256([]byte(strings.Join(entries, "\n")))
	return hex.EncodeToString(h[:])
}

// Fingerprint returns the content fingerprint of a page. A fingerprint field
// already present in the frontmatter is excluded from the hash.
func Fingerprint(page *frontmatter.Page) (string, error) {
	fields := make(map[string]any, len(page.Fields))
	for k, v := range page.Fields {
		if k != mdfp.FingerprintField {
			fields[k] = v
		}
	}
	fm := ""
	if len(fields) > 0 {
		out, err := yaml.Marshal(fields)
		if err != nil {
			return "", err
		}
		fm = strings.TrimSuffix(string(out), "\n")
	}
	return mdfp.CalculateFingerprintFromParts(fm, string(page.Body)), nil
}

func normalizeRoute(route string) string {
	if i := strings.IndexAny(route, "?#"); i >= 0 {
		route = route[:i]
	}
	route = "/" + strings.Trim(route, "/")
	return route
}
