// Package frontmatter reads the YAML header of documentation pages.
package frontmatter

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

// ErrUnterminated is returned when a page opens a frontmatter block but never closes it.
var ErrUnterminated = errors.New("frontmatter opened with --- but never closed")

// Meta holds the frontmatter keys the site tooling understands. Other keys are
// kept in Page.Fields.
type Meta struct {
	ID              string   `yaml:"id"`
	Title           string   `yaml:"title"`
	Slug            string   `yaml:"slug"`
	SidebarLabel    string   `yaml:"sidebar_label"`
	SidebarPosition float64  `yaml:"sidebar_position"`
	Tags            []string `yaml:"tags"`
	Draft           bool     `yaml:"draft"`
}

// Page is a markdown page split into its header and body.
type Page struct {
	Meta        Meta
	Fields      map[string]any
	Frontmatter []byte // raw YAML, without delimiters
	Body        []byte
}

// Split cuts a leading "---" delimited block off content. found is false when
// content has no frontmatter, in which case body is content itself.
func Split(content []byte) (fm, body []byte, found bool, err error) {
	nl := []byte("\n")
	if i := bytes.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		nl = []byte("\r\n")
	}
	delim := append([]byte("---"), nl...)
	if !bytes.HasPrefix(content, delim) {
		return nil, content, false, nil
	}

	rest := content[len(delim):]
	if bytes.HasPrefix(rest, delim) {
		return []byte{}, rest[len(delim):], true, nil
	}
	if string(rest) == "---" {
		return []byte{}, []byte{}, true, nil
	}
	closing := append(append([]byte{}, nl...), delim...)
	end := bytes.Index(rest, closing)
	if end < 0 {
		// The closing delimiter may also be the last line, without a newline.
		last := append(append([]byte{}, nl...), "---"...)
		if bytes.HasSuffix(rest, last) {
			return rest[:len(rest)-len(last)+len(nl)], []byte{}, true, nil
		}
		return nil, nil, false, ErrUnterminated
	}
	return rest[:end+len(nl)], rest[end+len(closing):], true, nil
}

// Parse splits content and decodes its frontmatter.
func Parse(content []byte) (*Page, error) {
	fm, body, _, err := Split(content)
	if err != nil {
		return nil, err
	}
	page := &Page{Frontmatter: fm, Body: body, Fields: map[string]any{}}
	if len(bytes.TrimSpace(fm)) == 0 {
		return page, nil
	}
	if err := yaml.Unmarshal(fm, &page.Meta); err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(fm, &page.Fields); err != nil {
		return nil, err
	}
	return page, nil
}
